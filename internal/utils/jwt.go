package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJWT sets the signing secret used for staff tokens. Called once at startup.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

// JWTClaims are the staff session claims. BranchID is set for vaporista
// accounts tied to a home branch.
type JWTClaims struct {
	UserID   string  `json:"userId"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	BranchID *string `json:"branchId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT issues a signed staff token valid for 24 hours.
func GenerateJWT(userID, email, role string, branchID *string) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		BranchID: branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ValidateJWT parses and verifies a staff token.
func ValidateJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
