package cart

import (
	"sync"
)

// Repository owns the per-(user, product) quantity ledger.
type Repository interface {
	// Apply adds delta to the line's quantity, creating the line when
	// absent, and returns the post-update quantity. The line is deleted
	// in the same atomic step when the result is <= 0, so callers see the
	// quantity that was reached, never a persisted non-positive row.
	Apply(userID, productID, delta int) (int, error)
	// Remove deletes the line unconditionally; ErrNotFound when absent.
	Remove(userID, productID int) error
	// Get returns the user's lines in insertion order joined with catalog
	// details. An empty cart yields an empty slice.
	Get(userID int) ([]CartItem, error)
	// Clear empties the user's cart.
	Clear(userID int) error
}

// ProductDetails resolves catalog data for Get responses when the cart is
// backed by memory instead of SQL joins.
type ProductDetails func(productID int) (name string, price float64, imageURL string)

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.Mutex
	lines   map[int][]line // per user, insertion order
	details ProductDetails
}

type line struct {
	productID int
	quantity  int
}

func NewInMemoryRepository(details ProductDetails) *InMemoryRepository {
	return &InMemoryRepository{lines: make(map[int][]line), details: details}
}

func (r *InMemoryRepository) Apply(userID, productID, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.lines[userID]
	for i, l := range lines {
		if l.productID == productID {
			newQty := l.quantity + delta
			if newQty <= 0 {
				r.lines[userID] = append(lines[:i], lines[i+1:]...)
			} else {
				lines[i].quantity = newQty
			}
			return newQty, nil
		}
	}
	if delta > 0 {
		r.lines[userID] = append(lines, line{productID: productID, quantity: delta})
	}
	return delta, nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := r.lines[userID]
	for i, l := range lines {
		if l.productID == productID {
			r.lines[userID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Get(userID int) ([]CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CartItem, 0, len(r.lines[userID]))
	for _, l := range r.lines[userID] {
		item := CartItem{ProductID: l.productID, Quantity: l.quantity}
		if r.details != nil {
			item.Name, item.Price, item.ImageURL = r.details(l.productID)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lines, userID)
	return nil
}
