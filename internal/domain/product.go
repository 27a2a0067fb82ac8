package domain

// Product is catalog data consumed read-only when building line items. Prices
// are in paise. RentalPricePerDay is zero for sale-only products.
type Product struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Price             int64  `json:"price"`
	Stock             int32  `json:"stock"`
	RentalPricePerDay int64  `json:"rental_price_per_day,omitempty"`
}

// Rentable reports whether the product carries a rental price.
func (p *Product) Rentable() bool {
	return p.RentalPricePerDay > 0
}
