package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// AuthService authenticates dashboard staff and issues session tokens.
type AuthService struct {
	staffRepo *repository.StaffUserRepository
}

func NewAuthService(staffRepo *repository.StaffUserRepository) *AuthService {
	return &AuthService{staffRepo: staffRepo}
}

// Login verifies credentials and returns a signed JWT carrying the staff
// role and home branch.
func (s *AuthService) Login(email, password string) (string, *models.StaffUser, error) {
	user, err := s.staffRepo.GetByEmail(email)
	if err != nil {
		log.Warn().Str("email", email).Msg("Login attempt for unknown staff account")
		return "", nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Str("email", email).Msg("Login attempt on inactive staff account")
		return "", nil, utils.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, user.BranchID)
	if err != nil {
		return "", nil, err
	}

	if err := s.staffRepo.TouchLastLogin(user.ID); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to record last login")
	}

	log.Info().Str("email", email).Str("role", user.Role).Msg("Staff login successful")
	return token, user, nil
}

// CreateStaff provisions a staff account with a bcrypt password hash.
func (s *AuthService) CreateStaff(email, password, role string, fullName, branchID *string) (*models.StaffUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.StaffUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Role:         role,
		BranchID:     branchID,
		IsActive:     true,
	}
	if err := s.staffRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
