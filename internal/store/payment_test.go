package store

import (
	"errors"
	"testing"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupPaymentTestDB(t *testing.T) *PaymentStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPaymentStore(db)
}

func TestPaymentOrderLifecycle(t *testing.T) {
	ps := setupPaymentTestDB(t)

	p, err := ps.CreateOrder(1, "order_1700000000000", 499, "premium")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if p.Status != "pending" {
		t.Errorf("status = %q, want pending", p.Status)
	}
	if p.GatewayPaymentID != nil {
		t.Errorf("payment id = %v, want nil before verification", p.GatewayPaymentID)
	}
	if p.Amount != 499 {
		t.Errorf("amount = %v, want 499", p.Amount)
	}

	verified, err := ps.MarkSuccess("order_1700000000000", 1, "pay_abc123")
	if err != nil {
		t.Fatalf("mark success: %v", err)
	}
	if verified.Status != "success" {
		t.Errorf("status = %q, want success", verified.Status)
	}
	if verified.GatewayPaymentID == nil || *verified.GatewayPaymentID != "pay_abc123" {
		t.Errorf("payment id = %v, want pay_abc123", verified.GatewayPaymentID)
	}
}

func TestPaymentMarkSuccessOwnership(t *testing.T) {
	ps := setupPaymentTestDB(t)

	if _, err := ps.CreateOrder(1, "order_1", 99, "basic"); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Another user cannot verify someone else's order
	_, err := ps.MarkSuccess("order_1", 2, "pay_evil")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user verify: err = %v, want ErrNotFound", err)
	}

	// Unknown order id
	_, err = ps.MarkSuccess("order_unknown", 1, "pay_x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown order: err = %v, want ErrNotFound", err)
	}

	got, err := ps.GetByOrderID("order_1", 1)
	if err != nil {
		t.Fatalf("get payment: %v", err)
	}
	if got.Status != "pending" {
		t.Fatalf("payment status = %q, want still pending", got.Status)
	}
}

func TestPaymentHistoryOrder(t *testing.T) {
	ps := setupPaymentTestDB(t)

	ps.CreateOrder(1, "order_a", 100, "basic")
	ps.CreateOrder(1, "order_b", 200, "premium")
	ps.CreateOrder(2, "order_c", 300, "premium")

	payments, err := ps.History(1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	// Newest first
	if payments[0].GatewayOrderID != "order_b" || payments[1].GatewayOrderID != "order_a" {
		t.Errorf("order = %q, %q, want order_b, order_a",
			payments[0].GatewayOrderID, payments[1].GatewayOrderID)
	}
}
