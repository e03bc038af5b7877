package category

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// The storefront navigation only needs the distinct category names carried
// on product rows, so this package stays read-only over the products table.

// Repository provides access to category names.
type Repository interface {
	List() ([]string, error)
}

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns the known category names. Failures degrade to an empty
// slice so the storefront navigation never breaks on a read error.
func (s *Service) List() []string {
	items, err := s.repo.List()
	if err != nil {
		return []string{}
	}
	return items
}

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/categories", h.getCategories)
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
