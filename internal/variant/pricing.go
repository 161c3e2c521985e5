package variant

// PriceQuote carries the display prices for a SKU. Discounted is nil when no
// discount applies; Original is always the SKU base price.
type PriceQuote struct {
	Original   int  `json:"original"`
	Discounted *int `json:"discounted"`
}

// Adjust applies a product-level discount percentage to a base price in the
// smallest currency unit. The fractional rupiah is rounded half up. Percent
// values outside [0,100] come from bad product data and are clamped rather
// than allowed to inflate or negate the price.
func Adjust(basePrice, discountPercent int) PriceQuote {
	if discountPercent > 100 {
		discountPercent = 100
	}
	if discountPercent <= 0 {
		return PriceQuote{Original: basePrice}
	}
	d := (basePrice*(100-discountPercent) + 50) / 100
	return PriceQuote{Original: basePrice, Discounted: &d}
}
