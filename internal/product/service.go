package product

import "errors"

var ErrMissingFields = errors.New("name, category and price are required")

// ServiceInterface lets other packages depend on catalog behaviour without
// importing the concrete service.
type ServiceInterface interface {
	List() ([]Product, error)
	GetByID(id int) (Product, error)
	Exists(id int) (bool, error)
}

// Service orchestrates catalog operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

// Exists reports whether the catalog knows the given product. Cart and order
// code uses this to reject references to unknown products.
func (s *Service) Exists(id int) (bool, error) {
	_, err := s.GetByID(id)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Create(p Product) (Product, error) {
	if p.Name == "" || p.Category == "" || p.Price <= 0 {
		return Product{}, ErrMissingFields
	}
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	if id <= 0 {
		return Product{}, ErrNotFound
	}
	current, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	// partial payloads keep the stored values
	if p.Name == "" {
		p.Name = current.Name
	}
	if p.Category == "" {
		p.Category = current.Category
	}
	if p.Price <= 0 {
		p.Price = current.Price
	}
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
