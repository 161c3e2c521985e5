package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tokovape/tokovape_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListFilter narrows the storefront/admin product listing.
type ListFilter struct {
	CategorySlug string
	Brand        string
	Search       string
	FeaturedOnly bool
	ActiveOnly   bool
	Page         int
	Limit        int
}

// GetAllPaged returns products matching the filter plus the total count.
// MinPrice and CategoryName are populated via subquery/join for cards.
func (r *ProductRepository) GetAllPaged(ctx context.Context, f ListFilter) ([]models.Product, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	n := 0

	arg := func(v interface{}) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if f.ActiveOnly {
		where = append(where, "p.is_active = true")
	}
	if f.CategorySlug != "" {
		where = append(where, "c.slug = "+arg(f.CategorySlug))
	}
	if f.Brand != "" {
		where = append(where, "p.brand = "+arg(f.Brand))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, fmt.Sprintf("(p.name ILIKE %s OR p.brand ILIKE %s)", p, p))
	}
	if f.FeaturedOnly {
		where = append(where, "p.is_featured = true")
	}
	cond := strings.Join(where, " AND ")

	countQ := `SELECT COUNT(*) FROM products p LEFT JOIN categories c ON c.id = p.category_id WHERE ` + cond
	var total int
	if err := r.db.GetContext(ctx, &total, countQ, args...); err != nil {
		return nil, 0, err
	}

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}
	listQ := fmt.Sprintf(`
        SELECT p.*, c.name AS category_name,
               (SELECT MIN(s.price_idr) FROM product_skus s
                 WHERE s.product_id = p.id AND s.is_active = true) AS min_price
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE %s
        ORDER BY p.is_featured DESC, p.name ASC
        LIMIT %s OFFSET %s`,
		cond, arg(f.Limit), arg((f.Page-1)*f.Limit))

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, listQ, args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetBySlug returns a product by its storefront slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	const q = `
        SELECT p.*, c.name AS category_name
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.slug = $1 LIMIT 1`
	var p models.Product
	if err := r.db.GetContext(ctx, &p, q, slug); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.db.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBrands returns the distinct brand names of active products.
func (r *ProductRepository) GetBrands(ctx context.Context) ([]string, error) {
	var brands []string
	const q = `SELECT DISTINCT brand FROM products WHERE brand IS NOT NULL AND is_active = true ORDER BY brand`
	if err := r.db.SelectContext(ctx, &brands, q); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetActiveSlugs returns slugs of all active products (cache warm + sitemap).
func (r *ProductRepository) GetActiveSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.db.SelectContext(ctx, &slugs, `SELECT slug FROM products WHERE is_active = true`); err != nil {
		return nil, err
	}
	return slugs, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
        INSERT INTO products (id, slug, name, description, brand, category_id, base_image_url,
                              discount_percent, is_featured, is_active, meta_title, meta_description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING created_at, updated_at`
	return r.db.QueryRowx(q,
		p.ID, p.Slug, p.Name, p.Description, p.Brand, p.CategoryID, p.BaseImageURL,
		p.DiscountPercent, p.IsFeatured, p.IsActive, p.MetaTitle, p.MetaDescription,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products
        SET slug = $2, name = $3, description = $4, brand = $5, category_id = $6,
            base_image_url = $7, discount_percent = $8, is_featured = $9, is_active = $10,
            meta_title = $11, meta_description = $12, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		p.ID, p.Slug, p.Name, p.Description, p.Brand, p.CategoryID,
		p.BaseImageURL, p.DiscountPercent, p.IsFeatured, p.IsActive, p.MetaTitle, p.MetaDescription,
	).Scan(&p.UpdatedAt)
}

// Delete deletes a product; option types, values, SKUs and stock cascade.
func (r *ProductRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}
