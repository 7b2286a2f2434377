package store

import (
	"errors"
	"testing"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupVendorTestDB(t *testing.T) *VendorStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewVendorStore(db)
}

func TestVendorCRUD(t *testing.T) {
	vs := setupVendorTestDB(t)

	vendor, err := vs.Create(1, "Fresh Farms", "Maya", "555-0101", "maya@freshfarms.test", "12 Market Rd")
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}
	if vendor.Name != "Fresh Farms" {
		t.Errorf("name = %q, want %q", vendor.Name, "Fresh Farms")
	}
	if vendor.ContactPerson != "Maya" {
		t.Errorf("contact = %q, want %q", vendor.ContactPerson, "Maya")
	}

	updated, err := vs.Update(vendor.ID, 1, "Fresh Farms Co", "Maya", "555-0102", "maya@freshfarms.test", "12 Market Rd")
	if err != nil {
		t.Fatalf("update vendor: %v", err)
	}
	if updated.Name != "Fresh Farms Co" {
		t.Errorf("updated name = %q, want %q", updated.Name, "Fresh Farms Co")
	}
	if updated.Phone != "555-0102" {
		t.Errorf("updated phone = %q, want %q", updated.Phone, "555-0102")
	}

	if err := vs.Delete(vendor.ID, 1); err != nil {
		t.Fatalf("delete vendor: %v", err)
	}
	got, err := vs.GetByID(vendor.ID, 1)
	if err != nil {
		t.Fatalf("get deleted vendor: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted vendor")
	}
}

func TestVendorOwnershipIsolation(t *testing.T) {
	vs := setupVendorTestDB(t)

	vendor, err := vs.Create(1, "Corner Shop", "", "", "", "")
	if err != nil {
		t.Fatalf("create vendor: %v", err)
	}

	vendors, err := vs.List(2)
	if err != nil {
		t.Fatalf("list vendors: %v", err)
	}
	if len(vendors) != 0 {
		t.Fatalf("expected no vendors for other user, got %d", len(vendors))
	}

	_, err = vs.Update(vendor.ID, 2, "Hijacked", "", "", "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user update: err = %v, want ErrNotFound", err)
	}
	err = vs.Delete(vendor.ID, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}

	got, err := vs.GetByID(vendor.ID, 1)
	if err != nil {
		t.Fatalf("get vendor: %v", err)
	}
	if got == nil || got.Name != "Corner Shop" {
		t.Fatalf("owner's vendor was mutated: %+v", got)
	}
}
