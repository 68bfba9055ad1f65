package domain

type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discount_price,omitempty"`
	Category      string   `json:"category"`
	Images        []string `json:"images,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Stock         int      `json:"stock"`
	Brand         string   `json:"brand"`
	Tags          []string `json:"tags,omitempty"`
}

// EffectivePrice is the price a line item is charged at: the discount
// price when one is set, the list price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Review is a customer review attached to a product.
type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	UserName  string  `json:"user_name"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
	Helpful   int     `json:"helpful"`
}
