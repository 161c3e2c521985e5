package models

import "time"

// Branch represents a physical store location that holds sellable stock.
// Only active branches participate in storefront availability.
type Branch struct {
	ID            string    `db:"id" json:"id"`
	Slug          string    `db:"slug" json:"slug"`
	Name          string    `db:"name" json:"name"`
	WhatsappPhone string    `db:"whatsapp_phone" json:"whatsappPhone"`
	Address       *string   `db:"address" json:"address,omitempty"`
	City          *string   `db:"city" json:"city,omitempty"`
	IsActive      bool      `db:"is_active" json:"isActive"`
	CreatedAt     time.Time `db:"created_at" json:"-"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
