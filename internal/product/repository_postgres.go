package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productFields = `id, name, category, price, description, image_url, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')`

	listProductsQuery = `SELECT ` + productFields + ` FROM products ORDER BY id`

	getProductByIDQuery = `SELECT ` + productFields + ` FROM products WHERE id = $1`

	insertProductQuery = `
		INSERT INTO products (name, category, price, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')`

	updateProductQuery = `
		UPDATE products
		SET name = $1, category = $2, price = $3, description = $4, image_url = $5
		WHERE id = $6`

	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(getProductByIDQuery, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(insertProductQuery, p.Name, p.Category, p.Price, p.Description, p.ImageURL).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(updateProductQuery, p.Name, p.Category, p.Price, p.Description, p.ImageURL, id)
	if err != nil {
		return Product{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
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
