package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokovape/tokovape_api/internal/repository"
	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// ProductManagementHandler handles the admin product CRUD HTTP endpoints.
type ProductManagementHandler struct {
	productMgmtService *service.ProductManagementService
	productRepo        *repository.ProductRepository
}

// NewProductManagementHandler constructs a ProductManagementHandler.
func NewProductManagementHandler(productMgmtService *service.ProductManagementService, productRepo *repository.ProductRepository) *ProductManagementHandler {
	return &ProductManagementHandler{productMgmtService: productMgmtService, productRepo: productRepo}
}

// ListProducts handles GET /v1/admin/products
// Unlike the storefront listing, inactive products are included.
func (h *ProductManagementHandler) ListProducts(c *gin.Context) {
	filter := repository.ListFilter{
		CategorySlug: c.Query("category"),
		Brand:        c.Query("brand"),
		Search:       c.Query("search"),
		Page:         1,
		Limit:        50,
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
	if isActive := c.Query("isActive"); isActive == "true" {
		filter.ActiveOnly = true
	}

	products, total, err := h.productRepo.GetAllPaged(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	utils.SuccessWithPagination(c, 200, "Products retrieved", products, filter.Page, filter.Limit, total)
}

// CreateProduct handles POST /v1/admin/products
func (h *ProductManagementHandler) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productMgmtService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}
	utils.Success(c, 201, "Product created successfully", product)
}

// GetProduct handles GET /v1/admin/products/:id
func (h *ProductManagementHandler) GetProduct(c *gin.Context) {
	product, err := h.productRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id
func (h *ProductManagementHandler) UpdateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productMgmtService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		return
	}
	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /v1/admin/products/:id
func (h *ProductManagementHandler) DeleteProduct(c *gin.Context) {
	if err := h.productMgmtService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// CreateOptionType handles POST /v1/admin/products/:id/option-types
func (h *ProductManagementHandler) CreateOptionType(c *gin.Context) {
	var req service.CreateOptionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	optionType, err := h.productMgmtService.CreateOptionType(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create option type")
		return
	}
	utils.Success(c, 201, "Option type created successfully", optionType)
}

// CreateOptionValue handles POST /v1/admin/option-types/:id/values
func (h *ProductManagementHandler) CreateOptionValue(c *gin.Context) {
	var req service.CreateOptionValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	value, err := h.productMgmtService.CreateOptionValue(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create option value")
		return
	}
	utils.Success(c, 201, "Option value created successfully", value)
}

// DeleteOptionType handles DELETE /v1/admin/option-types/:id
func (h *ProductManagementHandler) DeleteOptionType(c *gin.Context) {
	if err := h.productMgmtService.DeleteOptionType(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete option type")
		return
	}
	utils.Success(c, 200, "Option type deleted successfully", nil)
}

// DeleteOptionValue handles DELETE /v1/admin/option-values/:id
func (h *ProductManagementHandler) DeleteOptionValue(c *gin.Context) {
	if err := h.productMgmtService.DeleteOptionValue(c.Request.Context(), c.Param("id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete option value")
		return
	}
	utils.Success(c, 200, "Option value deleted successfully", nil)
}

// CreateSKU handles POST /v1/admin/products/:id/skus
func (h *ProductManagementHandler) CreateSKU(c *gin.Context) {
	var req service.CreateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sku, err := h.productMgmtService.CreateSKU(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeSKUError(c, err, "Failed to create SKU")
		return
	}
	utils.Success(c, 201, "SKU created successfully", sku)
}

// GetProductSKUs handles GET /v1/admin/products/:id/skus
func (h *ProductManagementHandler) GetProductSKUs(c *gin.Context) {
	skus, err := h.productMgmtService.GetProductSKUs(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve SKUs")
		return
	}
	utils.Success(c, 200, "SKUs retrieved", gin.H{
		"skus":  skus,
		"total": len(skus),
	})
}

// UpdateSKU handles PUT /v1/admin/skus/:id
func (h *ProductManagementHandler) UpdateSKU(c *gin.Context) {
	var req service.CreateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	sku, err := h.productMgmtService.UpdateSKU(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeSKUError(c, err, "Failed to update SKU")
		return
	}
	utils.Success(c, 200, "SKU updated successfully", sku)
}

// DeleteSKU handles DELETE /v1/admin/skus/:id
func (h *ProductManagementHandler) DeleteSKU(c *gin.Context) {
	if err := h.productMgmtService.DeleteSKU(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, utils.ErrSKUNotFound) {
			utils.Error(c, 404, "SKU_NOT_FOUND", "SKU not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete SKU")
		return
	}
	utils.Success(c, 200, "SKU deleted successfully", nil)
}

func (h *ProductManagementHandler) writeSKUError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, utils.ErrSKUNotFound):
		utils.Error(c, 404, "SKU_NOT_FOUND", "SKU not found")
	case errors.Is(err, utils.ErrDuplicateVariant):
		utils.Error(c, 409, "DUPLICATE_VARIANT", "Another active SKU of this product already has these attributes")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", fallback)
	}
}
