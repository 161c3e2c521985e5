package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tokovape/tokovape_api/internal/models"
	"github.com/tokovape/tokovape_api/internal/service"
	"github.com/tokovape/tokovape_api/internal/utils"
)

// StockHandler serves the staff stock screen: per-branch listing, absolute
// sets, and ±deltas. Branch authorization lives in the service.
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler constructs a StockHandler.
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{
		UserID: c.GetString("userId"),
		Role:   c.GetString("role"),
	}
	if branchID := c.GetString("branchId"); branchID != "" {
		actor.BranchID = &branchID
	}
	return actor
}

// ListByBranch handles GET /v1/dashboard/branches/:branchId/stock
func (h *StockHandler) ListByBranch(c *gin.Context) {
	items, err := h.stockService.ListByBranch(c.Request.Context(), actorFrom(c), c.Param("branchId"))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrBranchForbidden):
			utils.Error(c, 403, "BRANCH_FORBIDDEN", "You may only view stock for your own branch")
		case errors.Is(err, utils.ErrBranchNotFound):
			utils.Error(c, 404, "BRANCH_NOT_FOUND", "Branch not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve stock")
		}
		return
	}
	utils.Success(c, 200, "Stock retrieved", gin.H{
		"items": items,
		"total": len(items),
	})
}

// SetQuantity handles PUT /v1/dashboard/branches/:branchId/stock/:skuId
func (h *StockHandler) SetQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	row, err := h.stockService.SetQuantity(c.Request.Context(), actorFrom(c), c.Param("branchId"), c.Param("skuId"), req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.Success(c, 200, "Stock quantity set", row)
}

// AdjustQuantity handles PATCH /v1/dashboard/branches/:branchId/stock/:skuId
func (h *StockHandler) AdjustQuantity(c *gin.Context) {
	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	row, err := h.stockService.AdjustQuantity(c.Request.Context(), actorFrom(c), c.Param("branchId"), c.Param("skuId"), req.Delta)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.Success(c, 200, "Stock quantity adjusted", row)
}

// Assign handles POST /v1/admin/stock — creates or replaces a stock row.
func (h *StockHandler) Assign(c *gin.Context) {
	var req struct {
		BranchID          string `json:"branchId" binding:"required"`
		SKUID             string `json:"skuId" binding:"required"`
		Quantity          int    `json:"quantity" binding:"gte=0"`
		LowStockThreshold int    `json:"lowStockThreshold" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	row := &models.StockRow{
		BranchID:          req.BranchID,
		SKUID:             req.SKUID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
	}
	if err := h.stockService.Assign(c.Request.Context(), actorFrom(c), row); err != nil {
		if errors.Is(err, utils.ErrBranchForbidden) {
			utils.Error(c, 403, "BRANCH_FORBIDDEN", "Admin access required")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to assign stock")
		return
	}
	utils.Success(c, 201, "Stock assigned", row)
}

// LowStock handles GET /v1/admin/stock/low
func (h *StockHandler) LowStock(c *gin.Context) {
	items, err := h.stockService.LowStock(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve low stock rows")
		return
	}
	utils.Success(c, 200, "Low stock retrieved", gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *StockHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrBranchForbidden):
		utils.Error(c, 403, "BRANCH_FORBIDDEN", "You may only edit stock for your own branch")
	case errors.Is(err, utils.ErrStockRowNotFound):
		utils.Error(c, 404, "STOCK_ROW_NOT_FOUND", "No stock row for this branch and SKU")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update stock")
	}
}
