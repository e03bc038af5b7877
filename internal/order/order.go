package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound              = errors.New("order not found")
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidIdempotencyKey = errors.New("idempotency key must be a UUID")
)

// Status is an order's position in its delivery lifecycle. Orders only move
// forward; Delivered and Cancelled are terminal.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// ParseStatus maps a wire string onto a known Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is the shipping snapshot and lifecycle record written at placement.
// Everything except Status is immutable once created.
type Order struct {
	ID                int       `json:"orderId"`
	UserID            int       `json:"userId"`
	CustomerName      string    `json:"customerName"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	PaymentMode       string    `json:"paymentMode"`
	Status            Status    `json:"status"`
	BookingTime       time.Time `json:"bookingTime"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	IdempotencyKey    string    `json:"-"`
}

// Item is one product line within an order. Price is the unit price frozen
// at order time, not a live catalog reference.
type Item struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Row is one record of the flat Order × OrderItem × Product join that the
// aggregator folds into nested views.
type Row struct {
	OrderID           int
	CustomerName      string
	Phone             string
	Address           string
	PaymentMode       string
	Status            Status
	BookingTime       time.Time
	EstimatedDelivery time.Time
	ProductID         int
	ProductName       string
	Quantity          int
	Price             float64
}

// View is the nested per-order shape returned to clients. Total is always
// recomputed from the items, never stored.
type View struct {
	OrderID           int        `json:"orderId"`
	CustomerName      string     `json:"customerName"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	PaymentMode       string     `json:"paymentMode"`
	Status            Status     `json:"status"`
	BookingTime       time.Time  `json:"bookingTime"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
	Items             []ItemView `json:"items"`
	Total             float64    `json:"total"`
}

type ItemView struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
