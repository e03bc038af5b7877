package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getUserByIDQuery = `
		SELECT id, name, email, password, role, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
		FROM users
		WHERE id = $1`

	getUserByEmailQuery = `
		SELECT id, name, email, password, role, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
		FROM users
		WHERE email = $1`

	insertUserQuery = `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return scanUser(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return scanUser(r.db.QueryRow(getUserByEmailQuery, email))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	if u.Role == "" {
		u.Role = RoleUser
	}
	err := r.db.QueryRow(insertUserQuery, u.Name, u.Email, u.Password, u.Role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return u, nil
}
