package store

import (
	"errors"
	"testing"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupCategoryTestDB(t *testing.T) *CategoryStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewCategoryStore(db)
}

func TestCategorySeedDefaults(t *testing.T) {
	cs := setupCategoryTestDB(t)

	categories, err := cs.List(42)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 10 {
		t.Fatalf("expected 10 seed categories, got %d", len(categories))
	}
	for _, c := range categories {
		if !c.IsDefault {
			t.Errorf("seed category %q should be default", c.Name)
		}
		if c.UserID != 0 {
			t.Errorf("seed category %q owner = %d, want 0", c.Name, c.UserID)
		}
	}
}

func TestCategoryCreateCustom(t *testing.T) {
	cs := setupCategoryTestDB(t)

	parent := "Groceries"
	c, err := cs.Create(7, "Baking", &parent)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if c.Name != "Baking" {
		t.Errorf("name = %q, want %q", c.Name, "Baking")
	}
	if c.IsDefault {
		t.Error("custom category should not be default")
	}
	if c.ParentCategory == nil || *c.ParentCategory != "Groceries" {
		t.Errorf("parent = %v, want Groceries", c.ParentCategory)
	}

	// Visible to its owner alongside the defaults
	categories, err := cs.List(7)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 11 {
		t.Fatalf("expected 11 categories for owner, got %d", len(categories))
	}

	// Invisible to everyone else
	categories, err = cs.List(8)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 10 {
		t.Fatalf("expected 10 categories for other user, got %d", len(categories))
	}
}

func TestCategoryDefaultNotDeletable(t *testing.T) {
	cs := setupCategoryTestDB(t)

	categories, err := cs.List(1)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}

	err = cs.Delete(categories[0].ID, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting default: err = %v, want ErrNotFound", err)
	}

	// Even by the sentinel owner
	err = cs.Delete(categories[0].ID, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting default as sentinel owner: err = %v, want ErrNotFound", err)
	}

	got, err := cs.GetByID(categories[0].ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if got == nil {
		t.Fatal("default category was deleted")
	}
}

func TestCategoryDeleteOwnership(t *testing.T) {
	cs := setupCategoryTestDB(t)

	c, err := cs.Create(1, "Pet Supplies", nil)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	// Another user cannot delete it
	err = cs.Delete(c.ID, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}

	// The owner can
	if err := cs.Delete(c.ID, 1); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	got, err := cs.GetByID(c.ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted category")
	}
}

func TestCategoryDeleteNonexistent(t *testing.T) {
	cs := setupCategoryTestDB(t)

	err := cs.Delete(9999, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
