package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// CategoryHandler serves the public category listing and the admin CRUD.
type CategoryHandler struct {
	repo *repository.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(repo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List handles GET /v1/catalog/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

type categoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parentId"`
}

// Create handles POST /v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	cat := &models.Category{
		ID:       uuid.NewString(),
		Slug:     slug,
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	if err := h.repo.Create(cat); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	utils.Success(c, 201, "Category created successfully", cat)
}

// Update handles PUT /v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cat := &models.Category{
		ID:       c.Param("id"),
		Slug:     req.Slug,
		Name:     req.Name,
		ParentID: req.ParentID,
	}
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(req.Name)
	}
	if err := h.repo.Update(cat); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update category")
		return
	}
	utils.Success(c, 200, "Category updated successfully", cat)
}

// Delete handles DELETE /v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete category")
		return
	}
	utils.Success(c, 200, "Category deleted successfully", nil)
}
