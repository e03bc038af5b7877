package cart

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// The arithmetic update rides on the (user_id, product_id) unique key,
	// so two concurrent deltas for the same line serialize on the row and
	// neither update is lost.
	applyDeltaQuery = `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
		RETURNING quantity`

	deleteLineQuery = `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`

	getCartQuery = `
		SELECT c.product_id, p.name, p.price, p.image_url, c.quantity
		FROM cart c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.id`

	clearCartQuery = `DELETE FROM cart WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Apply(userID, productID, delta int) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}

	var quantity int
	if err := tx.QueryRow(applyDeltaQuery, userID, productID, delta).Scan(&quantity); err != nil {
		tx.Rollback()
		return 0, err
	}

	// a non-positive result means the line must not survive
	if quantity <= 0 {
		if _, err := tx.Exec(deleteLineQuery, userID, productID); err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return quantity, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(deleteLineQuery, userID, productID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Get(userID int) ([]CartItem, error) {
	rows, err := r.db.Query(getCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CartItem, 0)
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.ImageURL, &item.Quantity); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Clear(userID int) error {
	_, err := r.db.Exec(clearCartQuery, userID)
	return err
}
