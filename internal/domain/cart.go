package domain

// CartLine is one product-quantity pairing in a cart. Quantity is always
// positive and never exceeds the product's stock.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the charged price for the line (discount price when present).
func (l CartLine) LineTotal() float64 {
	return l.Product.EffectivePrice() * float64(l.Quantity)
}

// Totals holds the derived money values of a cart. They are always
// recomputed from the line list, never stored on their own.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Cart is a line list plus its derived totals, as returned to callers.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Totals
}
