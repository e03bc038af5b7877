package product

import "testing"

func TestExists(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 5, Name: "Notebook", Category: "Stationery", Price: 10}})
	s := NewService(repo)

	ok, err := s.Exists(5)
	if err != nil || !ok {
		t.Fatalf("expected product 5 to exist, got ok=%v err=%v", ok, err)
	}

	ok, err = s.Exists(99)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("expected product 99 to be unknown")
	}
}

func TestCreate_RequiresFields(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Create(Product{Name: "Pen"}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := s.Create(Product{Name: "Pen", Category: "Stationery", Price: 2.5}); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestUpdate_PartialPayloadKeepsStoredValues(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{ID: 5, Name: "Notebook", Category: "Stationery", Price: 10}})
	s := NewService(repo)

	updated, err := s.Update(5, Product{Price: 12})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Notebook" || updated.Category != "Stationery" || updated.Price != 12 {
		t.Fatalf("unexpected update result %+v", updated)
	}
}
