package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tokovape/tokovape_api/internal/models"
)

// StockRepository handles data access for per-branch stock rows.
type StockRepository struct {
	db *sqlx.DB
}

// NewStockRepository creates a new StockRepository.
func NewStockRepository(db *sqlx.DB) *StockRepository {
	return &StockRepository{db: db}
}

// GetForSKUs returns stock rows for the given SKU ids joined with their
// branches, restricted to quantity > 0 and active branches — the raw input
// for storefront availability.
func (r *StockRepository) GetForSKUs(ctx context.Context, skuIDs []string) ([]models.BranchStockRow, error) {
	if len(skuIDs) == 0 {
		return nil, nil
	}
	const q = `
        SELECT bs.branch_id, bs.sku_id, bs.quantity, bs.low_stock_threshold, bs.updated_at,
               b.id AS "branch.id", b.slug AS "branch.slug", b.name AS "branch.name",
               b.whatsapp_phone AS "branch.whatsapp_phone", b.address AS "branch.address",
               b.city AS "branch.city", b.is_active AS "branch.is_active",
               b.created_at AS "branch.created_at", b.updated_at AS "branch.updated_at"
        FROM branch_stock bs
        JOIN branches b ON b.id = bs.branch_id
        WHERE bs.sku_id = ANY($1) AND bs.quantity > 0 AND b.is_active = true`
	var rows []models.BranchStockRow
	if err := r.db.SelectContext(ctx, &rows, q, pq.Array(skuIDs)); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByBranchID returns the branch's stock rows enriched with SKU and
// product info for the dashboard, lowest quantity first.
func (r *StockRepository) GetByBranchID(ctx context.Context, branchID string) ([]models.DashboardStockItem, error) {
	const q = `
        SELECT bs.branch_id, bs.sku_id, bs.quantity, bs.low_stock_threshold,
               s.sku_code, s.attributes, s.price_idr,
               p.name AS product_name, p.brand
        FROM branch_stock bs
        JOIN product_skus s ON s.id = bs.sku_id
        JOIN products p ON p.id = s.product_id
        WHERE bs.branch_id = $1
        ORDER BY bs.quantity ASC, p.name ASC`
	var items []models.DashboardStockItem
	if err := r.db.SelectContext(ctx, &items, q, branchID); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns one stock row.
func (r *StockRepository) Get(ctx context.Context, branchID, skuID string) (*models.StockRow, error) {
	var row models.StockRow
	const q = `SELECT * FROM branch_stock WHERE branch_id = $1 AND sku_id = $2 LIMIT 1`
	if err := r.db.GetContext(ctx, &row, q, branchID, skuID); err != nil {
		return nil, err
	}
	return &row, nil
}

// SetQuantity sets the absolute quantity of one row. Negative values are a
// caller error and are clamped at zero. Returns the stored row.
func (r *StockRepository) SetQuantity(ctx context.Context, branchID, skuID string, quantity int) (*models.StockRow, error) {
	const q = `
        UPDATE branch_stock
        SET quantity = GREATEST($3, 0), updated_at = NOW()
        WHERE branch_id = $1 AND sku_id = $2
        RETURNING *`
	var row models.StockRow
	if err := r.db.GetContext(ctx, &row, q, branchID, skuID, quantity); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &row, nil
}

// AdjustQuantity applies a signed delta, clamping the result at zero.
// The read-modify-write happens in one statement; concurrent staff edits are
// last-write-wins at the store, an accepted limitation.
func (r *StockRepository) AdjustQuantity(ctx context.Context, branchID, skuID string, delta int) (*models.StockRow, error) {
	const q = `
        UPDATE branch_stock
        SET quantity = GREATEST(quantity + $3, 0), updated_at = NOW()
        WHERE branch_id = $1 AND sku_id = $2
        RETURNING *`
	var row models.StockRow
	if err := r.db.GetContext(ctx, &row, q, branchID, skuID, delta); err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert creates or replaces a stock row (admin assigning a SKU to a branch).
func (r *StockRepository) Upsert(ctx context.Context, row *models.StockRow) error {
	const q = `
        INSERT INTO branch_stock (branch_id, sku_id, quantity, low_stock_threshold)
        VALUES ($1, $2, GREATEST($3, 0), $4)
        ON CONFLICT (branch_id, sku_id) DO UPDATE SET
            quantity = GREATEST(EXCLUDED.quantity, 0),
            low_stock_threshold = EXCLUDED.low_stock_threshold,
            updated_at = NOW()
        RETURNING quantity, updated_at`
	return r.db.QueryRowxContext(ctx, q, row.BranchID, row.SKUID, row.Quantity, row.LowStockThreshold).
		Scan(&row.Quantity, &row.UpdatedAt)
}

// GetLowStock returns rows at or below their threshold across all active
// branches, enriched for alerting.
func (r *StockRepository) GetLowStock(ctx context.Context) ([]models.DashboardStockItem, error) {
	const q = `
        SELECT bs.branch_id, bs.sku_id, bs.quantity, bs.low_stock_threshold,
               s.sku_code, s.attributes, s.price_idr,
               p.name AS product_name, p.brand
        FROM branch_stock bs
        JOIN branches b ON b.id = bs.branch_id AND b.is_active = true
        JOIN product_skus s ON s.id = bs.sku_id AND s.is_active = true
        JOIN products p ON p.id = s.product_id
        WHERE bs.quantity <= bs.low_stock_threshold
        ORDER BY bs.quantity ASC`
	var items []models.DashboardStockItem
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
