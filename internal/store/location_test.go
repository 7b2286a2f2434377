package store

import (
	"errors"
	"testing"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupLocationTestDB(t *testing.T) *LocationStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewLocationStore(db)
}

func TestLocationCRUD(t *testing.T) {
	ls := setupLocationTestDB(t)

	location, err := ls.Create(1, "Fridge")
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if location.Name != "Fridge" {
		t.Errorf("name = %q, want %q", location.Name, "Fridge")
	}

	if _, err := ls.Create(1, "Attic"); err != nil {
		t.Fatalf("create location: %v", err)
	}

	// Ordered by name
	locations, err := ls.List(1)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].Name != "Attic" || locations[1].Name != "Fridge" {
		t.Errorf("order = %q, %q, want Attic, Fridge", locations[0].Name, locations[1].Name)
	}

	if err := ls.Delete(location.ID, 1); err != nil {
		t.Fatalf("delete location: %v", err)
	}
	got, err := ls.GetByID(location.ID, 1)
	if err != nil {
		t.Fatalf("get deleted location: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted location")
	}
}

func TestLocationOwnershipIsolation(t *testing.T) {
	ls := setupLocationTestDB(t)

	location, err := ls.Create(1, "Garage Shelf")
	if err != nil {
		t.Fatalf("create location: %v", err)
	}

	locations, err := ls.List(2)
	if err != nil {
		t.Fatalf("list locations: %v", err)
	}
	if len(locations) != 0 {
		t.Fatalf("expected no locations for other user, got %d", len(locations))
	}

	err = ls.Delete(location.ID, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}

	got, err := ls.GetByID(location.ID, 1)
	if err != nil {
		t.Fatalf("get location: %v", err)
	}
	if got == nil {
		t.Fatal("owner's location was deleted")
	}
}
