package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrAccountInactive) {
			utils.Error(c, 403, "ACCOUNT_INACTIVE", "Account is deactivated")
			return
		}
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     user.Role,
			"branchId": user.BranchID,
		},
	})
}

// Me handles GET /v1/dashboard/me using claims set by the JWT middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	var branchID *string
	if b := c.GetString("branchId"); b != "" {
		branchID = &b
	}
	utils.Success(c, 200, "Profile retrieved", gin.H{
		"id":       c.GetString("userId"),
		"email":    c.GetString("email"),
		"role":     c.GetString("role"),
		"branchId": branchID,
	})
}

// CreateStaff handles POST /v1/admin/staff
func (h *AuthHandler) CreateStaff(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=8"`
		Role     string  `json:"role" binding:"required"`
		FullName *string `json:"fullName"`
		BranchID *string `json:"branchId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleVaporista {
		utils.Error(c, 400, "INVALID_ROLE", "Role must be 'admin' or 'vaporista'")
		return
	}
	if req.Role == models.RoleVaporista && req.BranchID == nil {
		utils.Error(c, 400, "BRANCH_REQUIRED", "Vaporista accounts need a home branch")
		return
	}

	user, err := h.authService.CreateStaff(req.Email, req.Password, req.Role, req.FullName, req.BranchID)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create staff account")
		return
	}
	utils.Success(c, 201, "Staff account created", user)
}
