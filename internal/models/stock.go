package models

import "time"

// StockRow is the current on-hand count of one SKU at one branch.
// Quantity is never negative; writes below zero are clamped by the caller.
type StockRow struct {
	BranchID          string    `db:"branch_id" json:"branchId"`
	SKUID             string    `db:"sku_id" json:"skuId"`
	Quantity          int       `db:"quantity" json:"quantity"`
	LowStockThreshold int       `db:"low_stock_threshold" json:"lowStockThreshold"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// BranchStockRow joins a stock row with its branch for storefront availability.
type BranchStockRow struct {
	StockRow
	Branch Branch `db:"branch" json:"branch"`
}

// DashboardStockItem is a stock row enriched with SKU and product info for
// the staff stock screen.
type DashboardStockItem struct {
	BranchID          string     `db:"branch_id" json:"branchId"`
	SKUID             string     `db:"sku_id" json:"skuId"`
	Quantity          int        `db:"quantity" json:"quantity"`
	LowStockThreshold int        `db:"low_stock_threshold" json:"lowStockThreshold"`
	SKUCode           *string    `db:"sku_code" json:"skuCode,omitempty"`
	Attributes        Attributes `db:"attributes" json:"attributes"`
	PriceIDR          int        `db:"price_idr" json:"priceIdr"`
	ProductName       string     `db:"product_name" json:"productName"`
	Brand             *string    `db:"brand" json:"brand,omitempty"`
}
