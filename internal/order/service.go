package order

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPaymentMode is used when the client does not pick one.
	DefaultPaymentMode = "Cash on Delivery"

	// deliveryOffset is the fixed policy gap between booking and the
	// estimated delivery date.
	deliveryOffset = 5 * 24 * time.Hour
)

// Shipping is the checkout form snapshot stored on the order, independent of
// the user profile.
type Shipping struct {
	Name    string
	Phone   string
	Address string
}

// Service provides order placement, aggregation and status management.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Place creates one order plus one item per snapshot entry atomically and
// returns the new order id. The item prices in the snapshot are persisted
// verbatim as the frozen unit prices. An optional idempotency key (a client
// generated UUID) makes retries return the already-created order instead of
// a duplicate.
func (s *Service) Place(userID int, shipping Shipping, paymentMode string, snapshot []Item, idempotencyKey string) (int, error) {
	if shipping.Name == "" || shipping.Phone == "" || shipping.Address == "" || len(snapshot) == 0 {
		return 0, ErrMissingFields
	}
	for _, it := range snapshot {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return 0, ErrMissingFields
		}
	}
	if idempotencyKey != "" {
		if _, err := uuid.Parse(idempotencyKey); err != nil {
			return 0, ErrInvalidIdempotencyKey
		}
		if id, ok, err := s.repo.FindByIdempotencyKey(idempotencyKey); err != nil {
			return 0, err
		} else if ok {
			return id, nil
		}
	}
	if paymentMode == "" {
		paymentMode = DefaultPaymentMode
	}

	booking := s.now().UTC()
	ord := Order{
		UserID:            userID,
		CustomerName:      shipping.Name,
		Phone:             shipping.Phone,
		Address:           shipping.Address,
		PaymentMode:       paymentMode,
		Status:            StatusPending,
		BookingTime:       booking,
		EstimatedDelivery: booking.Add(deliveryOffset),
		IdempotencyKey:    idempotencyKey,
	}

	id, err := s.repo.Create(ord, snapshot)
	if err != nil && idempotencyKey != "" {
		// a concurrent retry may have won the unique-key race
		if existing, ok, err2 := s.repo.FindByIdempotencyKey(idempotencyKey); err2 == nil && ok {
			return existing, nil
		}
		return 0, err
	}
	return id, err
}

// ListForUser returns the user's orders as nested views, most recent first.
func (s *Service) ListForUser(userID int) ([]View, error) {
	rows, err := s.repo.RowsForUser(userID)
	if err != nil {
		return nil, err
	}
	return groupRows(rows), nil
}

// ListAll returns every user's orders as nested views, most recent first.
func (s *Service) ListAll() ([]View, error) {
	rows, err := s.repo.RowsForAll()
	if err != nil {
		return nil, err
	}
	return groupRows(rows), nil
}

// groupRows folds the flat join rows into nested views. The first row seen
// for an order fixes its position in the output; later rows for the same
// order append items in the order encountered.
func groupRows(rows []Row) []View {
	index := make(map[int]int, len(rows))
	views := make([]View, 0)

	for _, r := range rows {
		i, ok := index[r.OrderID]
		if !ok {
			i = len(views)
			index[r.OrderID] = i
			views = append(views, View{
				OrderID:           r.OrderID,
				CustomerName:      r.CustomerName,
				Phone:             r.Phone,
				Address:           r.Address,
				PaymentMode:       r.PaymentMode,
				Status:            r.Status,
				BookingTime:       r.BookingTime,
				EstimatedDelivery: r.EstimatedDelivery,
				Items:             make([]ItemView, 0, 1),
			})
		}
		views[i].Items = append(views[i].Items, ItemView{
			ProductID: r.ProductID,
			Name:      r.ProductName,
			Quantity:  r.Quantity,
			Price:     r.Price,
		})
		views[i].Total += r.Price * float64(r.Quantity)
	}

	return views
}

// Transition moves the order to newStatus if the pair is in the transition
// table, returning the applied status for confirmation messaging.
func (s *Service) Transition(orderID int, newStatus string) (Status, error) {
	next, ok := ParseStatus(newStatus)
	if !ok {
		return "", ErrInvalidTransition
	}

	current, err := s.repo.GetStatus(orderID)
	if err != nil {
		return "", err
	}
	if !current.CanTransitionTo(next) {
		return "", ErrInvalidTransition
	}

	swapped, err := s.repo.CompareAndSetStatus(orderID, current, next)
	if err != nil {
		return "", err
	}
	if !swapped {
		// the status moved underneath us; the observed pair is stale
		return "", ErrInvalidTransition
	}
	return next, nil
}
