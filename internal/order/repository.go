package order

import (
	"sort"
	"sync"
)

// Repository defines persistence operations for orders.
type Repository interface {
	// Create writes the order and all its items as one atomic unit and
	// returns the new order id. On any failure nothing is persisted.
	Create(ord Order, items []Item) (int, error)
	// FindByIdempotencyKey returns the id of the order previously created
	// with the key, if any.
	FindByIdempotencyKey(key string) (int, bool, error)
	// RowsForUser returns the flat join rows for one user, booking time
	// descending.
	RowsForUser(userID int) ([]Row, error)
	// RowsForAll returns the flat join rows across all users, booking time
	// descending.
	RowsForAll() ([]Row, error)
	// GetStatus returns the order's current status; ErrNotFound when the
	// order does not exist.
	GetStatus(orderID int) (Status, error)
	// CompareAndSetStatus overwrites the status only while the stored value
	// still equals from; it reports whether the swap happened.
	CompareAndSetStatus(orderID int, from, to Status) (bool, error)
}

// ProductName resolves catalog names for join rows when the repository is
// backed by memory instead of SQL joins.
type ProductName func(productID int) string

type storedOrder struct {
	ord   Order
	items []Item
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	orders []storedOrder
	names  ProductName
}

func NewInMemoryRepository(names ProductName) *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, names: names}
}

func (r *InMemoryRepository) Create(ord Order, items []Item) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	copied := make([]Item, len(items))
	copy(copied, items)
	r.orders = append(r.orders, storedOrder{ord: ord, items: copied})
	return ord.ID, nil
}

func (r *InMemoryRepository) FindByIdempotencyKey(key string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, so := range r.orders {
		if so.ord.IdempotencyKey != "" && so.ord.IdempotencyKey == key {
			return so.ord.ID, true, nil
		}
	}
	return 0, false, nil
}

func (r *InMemoryRepository) RowsForUser(userID int) ([]Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows(func(o Order) bool { return o.UserID == userID }), nil
}

func (r *InMemoryRepository) RowsForAll() ([]Row, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows(func(Order) bool { return true }), nil
}

func (r *InMemoryRepository) rows(keep func(Order) bool) []Row {
	selected := make([]storedOrder, 0)
	for _, so := range r.orders {
		if keep(so.ord) {
			selected = append(selected, so)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].ord.BookingTime.After(selected[j].ord.BookingTime)
	})

	out := make([]Row, 0)
	for _, so := range selected {
		for _, it := range so.items {
			row := Row{
				OrderID:           so.ord.ID,
				CustomerName:      so.ord.CustomerName,
				Phone:             so.ord.Phone,
				Address:           so.ord.Address,
				PaymentMode:       so.ord.PaymentMode,
				Status:            so.ord.Status,
				BookingTime:       so.ord.BookingTime,
				EstimatedDelivery: so.ord.EstimatedDelivery,
				ProductID:         it.ProductID,
				Quantity:          it.Quantity,
				Price:             it.Price,
			}
			if r.names != nil {
				row.ProductName = r.names(it.ProductID)
			}
			out = append(out, row)
		}
	}
	return out
}

func (r *InMemoryRepository) GetStatus(orderID int) (Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, so := range r.orders {
		if so.ord.ID == orderID {
			return so.ord.Status, nil
		}
	}
	return "", ErrNotFound
}

func (r *InMemoryRepository) CompareAndSetStatus(orderID int, from, to Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, so := range r.orders {
		if so.ord.ID == orderID {
			if so.ord.Status != from {
				return false, nil
			}
			r.orders[i].ord.Status = to
			return true, nil
		}
	}
	return false, ErrNotFound
}
