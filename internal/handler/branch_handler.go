package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/utils"
	"github.com/tokovape/tokovape_api/pkg/whatsapp"
)

// BranchHandler serves the public branch listing and the admin branch CRUD.
type BranchHandler struct {
	repo *repository.BranchRepository
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(repo *repository.BranchRepository) *BranchHandler {
	return &BranchHandler{repo: repo}
}

// ListActive handles GET /v1/catalog/branches
func (h *BranchHandler) ListActive(c *gin.Context) {
	branches, err := h.repo.GetAll(c.Request.Context(), true)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve branches")
		return
	}
	utils.Success(c, 200, "Branches retrieved", branches)
}

// ListAll handles GET /v1/admin/branches
func (h *BranchHandler) ListAll(c *gin.Context) {
	branches, err := h.repo.GetAll(c.Request.Context(), false)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve branches")
		return
	}
	utils.Success(c, 200, "Branches retrieved", branches)
}

type branchRequest struct {
	Name          string  `json:"name" binding:"required"`
	Slug          string  `json:"slug"`
	WhatsappPhone string  `json:"whatsappPhone" binding:"required"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	IsActive      *bool   `json:"isActive"`
}

// Create handles POST /v1/admin/branches
func (h *BranchHandler) Create(c *gin.Context) {
	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	phone := whatsapp.NormalizePhone(req.WhatsappPhone)
	if !whatsapp.IsValidNumber(phone) {
		utils.Error(c, 400, "INVALID_PHONE", "WhatsApp number must be a valid Indonesian mobile number")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	b := &models.Branch{
		ID:            uuid.NewString(),
		Slug:          slug,
		Name:          req.Name,
		WhatsappPhone: phone,
		Address:       req.Address,
		City:          req.City,
		IsActive:      active,
	}
	if err := h.repo.Create(b); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create branch")
		return
	}
	utils.Success(c, 201, "Branch created successfully", b)
}

// Update handles PUT /v1/admin/branches/:id
func (h *BranchHandler) Update(c *gin.Context) {
	b, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "BRANCH_NOT_FOUND", "Branch not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve branch")
		return
	}

	var req branchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	phone := whatsapp.NormalizePhone(req.WhatsappPhone)
	if !whatsapp.IsValidNumber(phone) {
		utils.Error(c, 400, "INVALID_PHONE", "WhatsApp number must be a valid Indonesian mobile number")
		return
	}

	b.Name = req.Name
	if req.Slug != "" {
		b.Slug = req.Slug
	}
	b.WhatsappPhone = phone
	b.Address = req.Address
	b.City = req.City
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := h.repo.Update(b); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update branch")
		return
	}
	utils.Success(c, 200, "Branch updated successfully", b)
}

// Delete handles DELETE /v1/admin/branches/:id
func (h *BranchHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "BRANCH_NOT_FOUND", "Branch not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete branch")
		return
	}
	utils.Success(c, 200, "Branch deleted successfully", nil)
}
