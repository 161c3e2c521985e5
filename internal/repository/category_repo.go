package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns all categories ordered by name.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := r.db.SelectContext(ctx, &cats, `SELECT * FROM categories ORDER BY name ASC`); err != nil {
		return nil, err
	}
	return cats, nil
}

// GetBySlug returns a category by slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var c models.Category
	if err := r.db.GetContext(ctx, &c, `SELECT * FROM categories WHERE slug = $1 LIMIT 1`, slug); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new category.
func (r *CategoryRepository) Create(c *models.Category) error {
	const q = `
        INSERT INTO categories (id, slug, name, parent_id)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q, c.ID, c.Slug, c.Name, c.ParentID).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Update updates an existing category.
func (r *CategoryRepository) Update(c *models.Category) error {
	const q = `
        UPDATE categories
        SET slug = $2, name = $3, parent_id = $4, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q, c.ID, c.Slug, c.Name, c.ParentID).Scan(&c.UpdatedAt)
}

// Delete deletes a category. Products referencing it keep a NULL category.
func (r *CategoryRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
