package cart

import "errors"

var (
	ErrNotFound        = errors.New("item not found in cart")
	ErrProductNotFound = errors.New("product not found")
	ErrZeroDelta       = errors.New("quantity delta must be non-zero")
)

// CartItem is one cart line joined with the catalog's current details for
// the product. Name, price and image are live catalog values, not snapshots.
type CartItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Outcomes of a single Apply call.
const (
	OutcomeAdded   = "added"
	OutcomeUpdated = "updated"
	OutcomeRemoved = "removed"
)
