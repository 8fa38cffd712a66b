package domain

// MenuItem is a product on the storefront menu. ID and Name carry the same
// value today; ID is kept separate so the identity can diverge later without
// touching stored orders.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
