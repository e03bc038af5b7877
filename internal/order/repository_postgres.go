package order

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id, customer_name, phone, address, payment_mode, status, booking_time, estimated_delivery, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING id`

	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)`

	findByIdempotencyKeyQuery = `SELECT id FROM orders WHERE idempotency_key = $1`

	orderRowFields = `
		SELECT o.id, o.customer_name, o.phone, o.address, o.payment_mode, o.status,
		       o.booking_time, o.estimated_delivery,
		       oi.product_id, p.name, oi.quantity, oi.price
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id`

	rowsForUserQuery = orderRowFields + `
		WHERE o.user_id = $1
		ORDER BY o.booking_time DESC, o.id DESC, oi.id`

	rowsForAllQuery = orderRowFields + `
		ORDER BY o.booking_time DESC, o.id DESC, oi.id`

	getStatusQuery = `SELECT status FROM orders WHERE id = $1`

	setStatusQuery = `UPDATE orders SET status = $2 WHERE id = $1 AND status = $3`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord Order, items []Item) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}

	var orderID int
	err = tx.QueryRow(insertOrderQuery,
		ord.UserID, ord.CustomerName, ord.Phone, ord.Address, ord.PaymentMode,
		ord.Status, ord.BookingTime, ord.EstimatedDelivery, ord.IdempotencyKey,
	).Scan(&orderID)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	for _, it := range items {
		if _, err := tx.Exec(insertOrderItemQuery, orderID, it.ProductID, it.Quantity, it.Price); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PostgresRepository) FindByIdempotencyKey(key string) (int, bool, error) {
	var id int
	err := r.db.QueryRow(findByIdempotencyKeyQuery, key).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *PostgresRepository) RowsForUser(userID int) ([]Row, error) {
	rows, err := r.db.Query(rowsForUserQuery, userID)
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func (r *PostgresRepository) RowsForAll() ([]Row, error) {
	rows, err := r.db.Query(rowsForAllQuery)
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		var row Row
		err := rows.Scan(
			&row.OrderID, &row.CustomerName, &row.Phone, &row.Address, &row.PaymentMode, &row.Status,
			&row.BookingTime, &row.EstimatedDelivery,
			&row.ProductID, &row.ProductName, &row.Quantity, &row.Price,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetStatus(orderID int) (Status, error) {
	var s string
	err := r.db.QueryRow(getStatusQuery, orderID).Scan(&s)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return Status(s), nil
}

func (r *PostgresRepository) CompareAndSetStatus(orderID int, from, to Status) (bool, error) {
	res, err := r.db.Exec(setStatusQuery, orderID, string(to), string(from))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
