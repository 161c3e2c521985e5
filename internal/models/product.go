package models

import "time"

// Product represents a catalog product. Variant axes (option types) and
// purchasable units (SKUs) hang off the product; DiscountPercent applies
// product-wide on top of each SKU base price.
type Product struct {
	ID              string    `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	Brand           *string   `db:"brand" json:"brand,omitempty"`
	CategoryID      *string   `db:"category_id" json:"categoryId,omitempty"`
	BaseImageURL    *string   `db:"base_image_url" json:"baseImageUrl,omitempty"`
	DiscountPercent int       `db:"discount_percent" json:"discountPercent"`
	IsFeatured      bool      `db:"is_featured" json:"isFeatured"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	MetaTitle       *string   `db:"meta_title" json:"metaTitle,omitempty"`
	MetaDescription *string   `db:"meta_description" json:"metaDescription,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"-"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`

	// Populated via join for list responses
	CategoryName *string `db:"category_name" json:"categoryName,omitempty"`
	MinPrice     *int    `db:"min_price" json:"minPrice,omitempty"`
}
