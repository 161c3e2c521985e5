package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

// OptionRepository handles data access for product option types and values.
type OptionRepository struct {
	db *sqlx.DB
}

// NewOptionRepository creates a new OptionRepository.
func NewOptionRepository(db *sqlx.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

// GetByProductID returns the product's option types in position order, each
// with its values in position order.
func (r *OptionRepository) GetByProductID(ctx context.Context, productID string) ([]models.OptionType, error) {
	var types []models.OptionType
	const typesQ = `SELECT * FROM product_option_types WHERE product_id = $1 ORDER BY position ASC, id ASC`
	if err := r.db.SelectContext(ctx, &types, typesQ, productID); err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return types, nil
	}

	const valuesQ = `
        SELECT v.* FROM product_option_values v
        JOIN product_option_types t ON t.id = v.option_type_id
        WHERE t.product_id = $1
        ORDER BY v.position ASC, v.id ASC`
	var values []models.OptionValue
	if err := r.db.SelectContext(ctx, &values, valuesQ, productID); err != nil {
		return nil, err
	}

	byType := make(map[string][]models.OptionValue, len(types))
	for _, v := range values {
		byType[v.OptionTypeID] = append(byType[v.OptionTypeID], v)
	}
	for i := range types {
		types[i].Values = byType[types[i].ID]
	}
	return types, nil
}

// CreateType creates an option type for a product.
func (r *OptionRepository) CreateType(t *models.OptionType) error {
	const q = `
        INSERT INTO product_option_types (id, product_id, name, position)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q, t.ID, t.ProductID, t.Name, t.Position).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// CreateValue creates an option value under an option type.
func (r *OptionRepository) CreateValue(v *models.OptionValue) error {
	const q = `
        INSERT INTO product_option_values (id, option_type_id, value, position)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q, v.ID, v.OptionTypeID, v.Value, v.Position).Scan(&v.CreatedAt, &v.UpdatedAt)
}

// DeleteType deletes an option type and its values.
func (r *OptionRepository) DeleteType(id string) error {
	_, err := r.db.Exec(`DELETE FROM product_option_types WHERE id = $1`, id)
	return err
}

// DeleteValue deletes a single option value.
func (r *OptionRepository) DeleteValue(id string) error {
	_, err := r.db.Exec(`DELETE FROM product_option_values WHERE id = $1`, id)
	return err
}
