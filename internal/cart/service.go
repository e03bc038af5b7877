package cart

// Catalog is the slice of the product service the cart needs: existence
// checks before a line is created.
type Catalog interface {
	Exists(productID int) (bool, error)
}

// Service orchestrates cart operations.
type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Apply adds the signed delta to the user's line for the product and
// reports what happened: OutcomeAdded for a new line, OutcomeUpdated for a
// changed one, OutcomeRemoved when the resulting quantity dropped to zero
// or below.
func (s *Service) Apply(userID, productID, delta int) (string, error) {
	if delta == 0 {
		return "", ErrZeroDelta
	}

	ok, err := s.catalog.Exists(productID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrProductNotFound
	}

	quantity, err := s.repo.Apply(userID, productID, delta)
	if err != nil {
		return "", err
	}

	switch {
	case quantity <= 0:
		return OutcomeRemoved, nil
	case quantity == delta:
		// the delta alone reached the new quantity, so the line is new
		return OutcomeAdded, nil
	default:
		return OutcomeUpdated, nil
	}
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Get(userID int) ([]CartItem, error) {
	return s.repo.Get(userID)
}

// Clear empties the cart. Placing an order never does this implicitly;
// checkout flows call it once the order is confirmed.
func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}
