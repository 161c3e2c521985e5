package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Attributes maps an option type name to the chosen option value for a SKU.
// Stored as JSONB; matching is done by string equality on names and values.
type Attributes map[string]string

// Value implements driver.Valuer for JSONB storage.
func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (a *Attributes) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = Attributes{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported attributes type %T", src)
	}
}

// SKU is a purchasable stock-keeping unit of a product. Attributes pins one
// value per option type; no two active SKUs of a product may share the same
// attributes map.
type SKU struct {
	ID         string     `db:"id" json:"id"`
	ProductID  string     `db:"product_id" json:"productId"`
	SKUCode    *string    `db:"sku_code" json:"skuCode,omitempty"`
	Attributes Attributes `db:"attributes" json:"attributes"`
	PriceIDR   int        `db:"price_idr" json:"priceIdr"`
	IsActive   bool       `db:"is_active" json:"isActive"`
	Barcode    *string    `db:"barcode" json:"barcode,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"-"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
}
