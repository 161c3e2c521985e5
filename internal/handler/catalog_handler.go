package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// CatalogHandler serves the public storefront endpoints: product listing,
// product detail, variant resolution, and WhatsApp order links.
type CatalogHandler struct {
	catalogService *service.CatalogService
	productRepo    *repository.ProductRepository
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService, productRepo *repository.ProductRepository) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, productRepo: productRepo}
}

// ListProducts handles GET /v1/catalog/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := repository.ListFilter{
		CategorySlug: c.Query("category"),
		Brand:        c.Query("brand"),
		Search:       c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
		Page:         1,
		Limit:        24,
	}
	if page := c.Query("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 && l <= 100 {
			filter.Limit = l
		}
	}

	products, total, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", products, filter.Page, filter.Limit, total)
}

// GetProduct handles GET /v1/catalog/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, err := h.catalogService.GetProductDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, 200, "Product retrieved", detail)
}

// Resolve handles POST /v1/catalog/products/:slug/resolve
// The selection may be partial; incomplete and no-match are normal outcomes.
func (h *CatalogHandler) Resolve(c *gin.Context) {
	var req struct {
		Selection map[string]string `json:"selection"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.catalogService.ResolveSelection(c.Request.Context(), c.Param("slug"), req.Selection)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to resolve selection")
		return
	}
	utils.Success(c, 200, "Selection resolved", result)
}

// OrderLink handles POST /v1/catalog/products/:slug/order-link
func (h *CatalogHandler) OrderLink(c *gin.Context) {
	var req struct {
		Selection map[string]string `json:"selection"`
		BranchID  string            `json:"branchId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	link, err := h.catalogService.BuildOrderLink(c.Request.Context(), c.Param("slug"), req.Selection, req.BranchID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProductNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrSKUNotFound):
			utils.Error(c, 422, "SELECTION_NOT_RESOLVED", "Selection does not resolve to an orderable variant")
		case errors.Is(err, utils.ErrBranchNotFound):
			utils.Error(c, 422, "BRANCH_NOT_AVAILABLE", "Branch does not stock this variant")
		case errors.Is(err, utils.ErrInvalidPhone):
			utils.Error(c, 502, "BRANCH_NOT_ORDERABLE", "Branch contact number is not configured for WhatsApp")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to build order link")
		}
		return
	}
	utils.Success(c, 200, "Order link built", link)
}

// GetBrands handles GET /v1/catalog/brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	brands, err := h.productRepo.GetBrands(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve brands")
		return
	}
	utils.Success(c, 200, "Brands retrieved", brands)
}
