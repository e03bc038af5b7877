package cart

import (
	"testing"
)

type fakeCatalog struct {
	known map[int]bool
}

func (f *fakeCatalog) Exists(productID int) (bool, error) {
	return f.known[productID], nil
}

func newTestService(known ...int) *Service {
	catalog := &fakeCatalog{known: map[int]bool{}}
	for _, id := range known {
		catalog.known[id] = true
	}
	repo := NewInMemoryRepository(func(productID int) (string, float64, string) {
		return "product", 10, ""
	})
	return NewService(repo, catalog)
}

func TestApply_AddThenDecrement(t *testing.T) {
	s := newTestService(5)

	outcome, err := s.Apply(1, 5, 2)
	if err != nil {
		t.Fatalf("apply +2: %v", err)
	}
	if outcome != OutcomeAdded {
		t.Fatalf("expected %q, got %q", OutcomeAdded, outcome)
	}

	outcome, err = s.Apply(1, 5, -1)
	if err != nil {
		t.Fatalf("apply -1: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("expected %q, got %q", OutcomeUpdated, outcome)
	}

	items, err := s.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected one line with quantity 1, got %+v", items)
	}
}

func TestApply_DropBelowZeroRemovesLine(t *testing.T) {
	s := newTestService(5)

	if _, err := s.Apply(1, 5, 3); err != nil {
		t.Fatalf("apply +3: %v", err)
	}
	outcome, err := s.Apply(1, 5, -5)
	if err != nil {
		t.Fatalf("apply -5: %v", err)
	}
	if outcome != OutcomeRemoved {
		t.Fatalf("expected %q, got %q", OutcomeRemoved, outcome)
	}

	items, _ := s.Get(1)
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestApply_RunningSumOfDeltas(t *testing.T) {
	s := newTestService(7)

	deltas := []int{4, -1, 2, -2}
	for _, d := range deltas {
		if _, err := s.Apply(9, 7, d); err != nil {
			t.Fatalf("apply %d: %v", d, err)
		}
	}

	items, _ := s.Get(9)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %+v", items)
	}
}

func TestApply_UnknownProduct(t *testing.T) {
	s := newTestService(5)

	if _, err := s.Apply(1, 99, 1); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestApply_ZeroDelta(t *testing.T) {
	s := newTestService(5)

	if _, err := s.Apply(1, 5, 0); err != ErrZeroDelta {
		t.Fatalf("expected ErrZeroDelta, got %v", err)
	}
}

func TestApply_IndependentKeys(t *testing.T) {
	s := newTestService(1, 2)

	s.Apply(1, 1, 2)
	s.Apply(1, 2, 5)
	s.Apply(1, 1, -2) // removes product 1 only

	items, _ := s.Get(1)
	if len(items) != 1 || items[0].ProductID != 2 || items[0].Quantity != 5 {
		t.Fatalf("expected only product 2 with quantity 5, got %+v", items)
	}
}

func TestRemove_MissingLine(t *testing.T) {
	s := newTestService(5)

	if err := s.Remove(1, 5); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_EmptyCart(t *testing.T) {
	s := newTestService()

	items, err := s.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty slice, got %+v", items)
	}
}

func TestClear(t *testing.T) {
	s := newTestService(5)

	s.Apply(1, 5, 2)
	if err := s.Clear(1); err != nil {
		t.Fatalf("clear: %v", err)
	}
	items, _ := s.Get(1)
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", items)
	}
}
