package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type NotificationStore struct {
	db *sql.DB
}

func NewNotificationStore(db *sql.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func scanNotification(scanner interface{ Scan(...any) error }, withItemName bool) (*model.Notification, error) {
	var n model.Notification
	var itemID sql.NullInt64
	var itemName sql.NullString
	var isRead int

	dest := []any{&n.ID, &n.UserID, &itemID, &n.Message, &isRead, &n.CreatedAt}
	if withItemName {
		dest = append(dest, &itemName)
	}
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if itemID.Valid {
		n.ItemID = &itemID.Int64
	}
	if itemName.Valid {
		n.ItemName = &itemName.String
	}
	n.IsRead = isRead != 0
	return &n, nil
}

const notificationCols = `n.id, n.user_id, n.item_id, n.message, n.is_read, n.created_at`

func (s *NotificationStore) List(userID int64) ([]model.Notification, error) {
	rows, err := s.db.Query(
		`SELECT `+notificationCols+`, i.name
		 FROM notifications n
		 LEFT JOIN items i ON n.item_id = i.id
		 WHERE n.user_id = ?
		 ORDER BY n.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

func (s *NotificationStore) GetByID(id, userID int64) (*model.Notification, error) {
	row := s.db.QueryRow(
		`SELECT `+notificationCols+` FROM notifications n WHERE n.id = ? AND n.user_id = ?`,
		id, userID,
	)
	n, err := scanNotification(row, false)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (s *NotificationStore) Create(userID int64, itemID *int64, message string) (*model.Notification, error) {
	result, err := s.db.Exec(
		`INSERT INTO notifications (user_id, item_id, message) VALUES (?, ?, ?)`,
		userID, nullInt64(itemID), message,
	)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

// MarkRead flips is_read. Notifications carry no updated timestamp, unlike
// items and shopping list entries.
func (s *NotificationStore) MarkRead(id, userID int64) error {
	return execOwned(s.db, "mark notification read",
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}

func (s *NotificationStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete notification",
		`DELETE FROM notifications WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}
