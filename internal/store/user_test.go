package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupUserTestDB(t *testing.T) *UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db)
}

func TestUserCreateAndGet(t *testing.T) {
	us := setupUserTestDB(t)

	u, err := us.Create("Priya", "priya@example.com", "$2a$10$fakehash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.SubscriptionPlan != "free" {
		t.Errorf("plan = %q, want free", u.SubscriptionPlan)
	}
	if u.SubscriptionEndDate != nil {
		t.Errorf("end date = %v, want nil", u.SubscriptionEndDate)
	}

	byEmail, err := us.GetByEmail("priya@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("get by email returned %+v, want id %d", byEmail, u.ID)
	}

	missing, err := us.GetByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestUserPasswordHash(t *testing.T) {
	us := setupUserTestDB(t)

	if _, err := us.Create("Priya", "priya@example.com", "$2a$10$fakehash"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	hash, err := us.GetPasswordHash("priya@example.com")
	if err != nil {
		t.Fatalf("get password hash: %v", err)
	}
	if hash != "$2a$10$fakehash" {
		t.Errorf("hash = %q", hash)
	}

	hash, err = us.GetPasswordHash("nobody@example.com")
	if err != nil {
		t.Fatalf("get missing hash: %v", err)
	}
	if hash != "" {
		t.Errorf("expected empty hash for unknown email, got %q", hash)
	}
}

func TestUserUpdateSubscription(t *testing.T) {
	us := setupUserTestDB(t)

	u, err := us.Create("Priya", "priya@example.com", "$2a$10$fakehash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	end := time.Now().AddDate(0, 1, 0)
	updated, err := us.UpdateSubscription(u.ID, "premium", "active", end)
	if err != nil {
		t.Fatalf("update subscription: %v", err)
	}
	if updated.SubscriptionPlan != "premium" || updated.SubscriptionStatus != "active" {
		t.Errorf("subscription = %s/%s, want premium/active",
			updated.SubscriptionPlan, updated.SubscriptionStatus)
	}
	if updated.SubscriptionEndDate == nil {
		t.Fatal("end date not set")
	}
	if diff := updated.SubscriptionEndDate.Sub(end.UTC()); diff < -time.Second || diff > time.Second {
		t.Errorf("end date = %v, want about %v", updated.SubscriptionEndDate, end.UTC())
	}

	_, err = us.UpdateSubscription(9999, "premium", "active", end)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user: err = %v, want ErrNotFound", err)
	}
}
