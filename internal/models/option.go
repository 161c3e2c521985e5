package models

import "time"

// OptionType is a named axis of variation for a product (e.g. "Flavor",
// "Nicotine Level"). Ordered by Position for display and selection flow.
type OptionType struct {
	ID        string    `db:"id" json:"id"`
	ProductID string    `db:"product_id" json:"productId"`
	Name      string    `db:"name" json:"name"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`

	// Populated separately; not a DB column on this table.
	Values []OptionValue `db:"-" json:"values,omitempty"`
}

// OptionValue is one allowed value of an OptionType.
type OptionValue struct {
	ID           string    `db:"id" json:"id"`
	OptionTypeID string    `db:"option_type_id" json:"optionTypeId"`
	Value        string    `db:"value" json:"value"`
	Position     int       `db:"position" json:"position"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
