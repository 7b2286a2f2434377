package store

import (
	"errors"
	"testing"

	"github.com/stocksavvy/stocksavvy/internal/database"
)

func setupNotificationTestDB(t *testing.T) (*NotificationStore, *ItemStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewNotificationStore(db), NewItemStore(db)
}

func TestNotificationCRUD(t *testing.T) {
	ns, is := setupNotificationTestDB(t)

	item, _ := is.Create(1, "Milk", nil, 1, "l", nil, 2, nil, nil)

	n, err := ns.Create(1, &item.ID, "Milk is running low")
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if n.Message != "Milk is running low" {
		t.Errorf("message = %q", n.Message)
	}
	if n.IsRead {
		t.Error("new notification should be unread")
	}

	// List joins the item name
	notifications, err := ns.List(1)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].ItemName == nil || *notifications[0].ItemName != "Milk" {
		t.Errorf("item name = %v, want Milk", notifications[0].ItemName)
	}

	if err := ns.MarkRead(n.ID, 1); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, err := ns.GetByID(n.ID, 1)
	if err != nil {
		t.Fatalf("get notification: %v", err)
	}
	if !got.IsRead {
		t.Error("notification should be read")
	}

	if err := ns.Delete(n.ID, 1); err != nil {
		t.Fatalf("delete notification: %v", err)
	}
	got, err = ns.GetByID(n.ID, 1)
	if err != nil {
		t.Fatalf("get deleted notification: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted notification")
	}
}

func TestNotificationWithoutItem(t *testing.T) {
	ns, _ := setupNotificationTestDB(t)

	n, err := ns.Create(1, nil, "Your subscription expires soon")
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if n.ItemID != nil {
		t.Errorf("item id = %v, want nil", n.ItemID)
	}
}

func TestNotificationOwnershipIsolation(t *testing.T) {
	ns, _ := setupNotificationTestDB(t)

	n, err := ns.Create(1, nil, "Private alert")
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}

	notifications, err := ns.List(2)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("expected no notifications for other user, got %d", len(notifications))
	}

	err = ns.MarkRead(n.ID, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user mark read: err = %v, want ErrNotFound", err)
	}
	err = ns.Delete(n.ID, 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete: err = %v, want ErrNotFound", err)
	}

	got, err := ns.GetByID(n.ID, 1)
	if err != nil {
		t.Fatalf("get notification: %v", err)
	}
	if got == nil || got.IsRead {
		t.Fatalf("owner's notification was mutated: %+v", got)
	}
}
