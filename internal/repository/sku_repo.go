package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

// SKURepository handles data access for product SKUs.
type SKURepository struct {
	db *sqlx.DB
}

// NewSKURepository creates a new SKURepository.
func NewSKURepository(db *sqlx.DB) *SKURepository {
	return &SKURepository{db: db}
}

// GetByProductID returns SKUs for a product (any status), id order.
func (r *SKURepository) GetByProductID(ctx context.Context, productID string) ([]models.SKU, error) {
	const q = `SELECT * FROM product_skus WHERE product_id = $1 ORDER BY id ASC`
	var skus []models.SKU
	if err := r.db.SelectContext(ctx, &skus, q, productID); err != nil {
		return nil, err
	}
	return skus, nil
}

// GetActiveByProductID returns active SKUs for a product, id order.
func (r *SKURepository) GetActiveByProductID(ctx context.Context, productID string) ([]models.SKU, error) {
	const q = `SELECT * FROM product_skus WHERE product_id = $1 AND is_active = true ORDER BY id ASC`
	var skus []models.SKU
	if err := r.db.SelectContext(ctx, &skus, q, productID); err != nil {
		return nil, err
	}
	return skus, nil
}

// GetByID returns a single SKU by id.
func (r *SKURepository) GetByID(ctx context.Context, id string) (*models.SKU, error) {
	var sku models.SKU
	if err := r.db.GetContext(ctx, &sku, `SELECT * FROM product_skus WHERE id = $1 LIMIT 1`, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &sku, nil
}

// CountActiveWithAttributes counts active SKUs of a product carrying exactly
// the given attributes map, excluding one id. Used as the ingestion-time
// guard against ambiguous variants.
func (r *SKURepository) CountActiveWithAttributes(ctx context.Context, productID string, attrs models.Attributes, excludeID string) (int, error) {
	const q = `
        SELECT COUNT(*) FROM product_skus
        WHERE product_id = $1 AND is_active = true AND attributes = $2::jsonb AND id <> $3`
	var count int
	if err := r.db.GetContext(ctx, &count, q, productID, attrs, excludeID); err != nil {
		return 0, err
	}
	return count, nil
}

// Create creates a new SKU.
func (r *SKURepository) Create(sku *models.SKU) error {
	const q = `
        INSERT INTO product_skus (id, product_id, sku_code, attributes, price_idr, is_active, barcode)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q,
		sku.ID, sku.ProductID, sku.SKUCode, sku.Attributes, sku.PriceIDR, sku.IsActive, sku.Barcode,
	).Scan(&sku.CreatedAt, &sku.UpdatedAt)
}

// Update updates an existing SKU.
func (r *SKURepository) Update(sku *models.SKU) error {
	const q = `
        UPDATE product_skus
        SET sku_code = $2, attributes = $3, price_idr = $4, is_active = $5,
            barcode = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		sku.ID, sku.SKUCode, sku.Attributes, sku.PriceIDR, sku.IsActive, sku.Barcode,
	).Scan(&sku.UpdatedAt)
}

// Delete deletes a SKU by id; stock rows cascade.
func (r *SKURepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM product_skus WHERE id = $1`, id)
	return err
}
