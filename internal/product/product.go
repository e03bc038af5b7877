package product

// Product is one catalog entry. Price is the current list price; carts and
// orders keep their own point-in-time snapshots of it.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}
