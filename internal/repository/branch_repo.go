package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

// BranchRepository handles data access for branches.
type BranchRepository struct {
	db *sqlx.DB
}

// NewBranchRepository creates a new BranchRepository.
func NewBranchRepository(db *sqlx.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// GetAll returns branches, optionally restricted to active ones, ordered by name.
func (r *BranchRepository) GetAll(ctx context.Context, activeOnly bool) ([]models.Branch, error) {
	q := `SELECT * FROM branches`
	if activeOnly {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY name ASC, id ASC`

	var branches []models.Branch
	if err := r.db.SelectContext(ctx, &branches, q); err != nil {
		return nil, err
	}
	return branches, nil
}

// GetByID returns a single branch by id.
func (r *BranchRepository) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	var b models.Branch
	if err := r.db.GetContext(ctx, &b, `SELECT * FROM branches WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBySlug returns a single branch by slug.
func (r *BranchRepository) GetBySlug(ctx context.Context, slug string) (*models.Branch, error) {
	var b models.Branch
	if err := r.db.GetContext(ctx, &b, `SELECT * FROM branches WHERE slug = $1 LIMIT 1`, slug); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create creates a new branch.
func (r *BranchRepository) Create(b *models.Branch) error {
	const q = `
        INSERT INTO branches (id, slug, name, whatsapp_phone, address, city, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q, b.ID, b.Slug, b.Name, b.WhatsappPhone, b.Address, b.City, b.IsActive).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// Update updates an existing branch.
func (r *BranchRepository) Update(b *models.Branch) error {
	const q = `
        UPDATE branches
        SET slug = $2, name = $3, whatsapp_phone = $4, address = $5, city = $6,
            is_active = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q, b.ID, b.Slug, b.Name, b.WhatsappPhone, b.Address, b.City, b.IsActive).
		Scan(&b.UpdatedAt)
}

// Delete deletes a branch and its stock rows.
func (r *BranchRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
