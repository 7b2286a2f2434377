package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type ShoppingListStore struct {
	db *sql.DB
}

func NewShoppingListStore(db *sql.DB) *ShoppingListStore {
	return &ShoppingListStore{db: db}
}

func scanShoppingListEntry(scanner interface{ Scan(...any) error }, withVendorName bool) (*model.ShoppingListEntry, error) {
	var e model.ShoppingListEntry
	var itemID, vendorID sql.NullInt64
	var vendorName sql.NullString

	dest := []any{
		&e.ID, &e.UserID, &itemID, &e.ItemName, &e.Quantity, &e.Unit,
		&vendorID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	}
	if withVendorName {
		dest = append(dest, &vendorName)
	}
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if itemID.Valid {
		e.ItemID = &itemID.Int64
	}
	if vendorID.Valid {
		e.VendorID = &vendorID.Int64
	}
	if vendorName.Valid {
		e.VendorName = &vendorName.String
	}
	return &e, nil
}

const shoppingListCols = `sl.id, sl.user_id, sl.item_id, sl.item_name, sl.quantity, sl.unit, sl.vendor_id, sl.status, sl.created_at, sl.updated_at`

func (s *ShoppingListStore) List(userID int64) ([]model.ShoppingListEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+shoppingListCols+`, v.name
		 FROM shopping_lists sl
		 LEFT JOIN vendors v ON sl.vendor_id = v.id
		 WHERE sl.user_id = ?
		 ORDER BY sl.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shopping list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.ShoppingListEntry
	for rows.Next() {
		e, err := scanShoppingListEntry(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func (s *ShoppingListStore) GetByID(id, userID int64) (*model.ShoppingListEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+shoppingListCols+` FROM shopping_lists sl WHERE sl.id = ? AND sl.user_id = ?`,
		id, userID,
	)
	e, err := scanShoppingListEntry(row, false)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping list entry: %w", err)
	}
	return e, nil
}

func (s *ShoppingListStore) Create(userID int64, itemID *int64, itemName string, quantity float64, unit string, vendorID *int64) (*model.ShoppingListEntry, error) {
	result, err := s.db.Exec(
		`INSERT INTO shopping_lists (user_id, item_id, item_name, quantity, unit, vendor_id) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, nullInt64(itemID), itemName, quantity, unit, nullInt64(vendorID),
	)
	if err != nil {
		return nil, fmt.Errorf("insert shopping list entry: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *ShoppingListStore) UpdateStatus(id, userID int64, status string) (*model.ShoppingListEntry, error) {
	err := execOwned(s.db, "update shopping list status",
		`UPDATE shopping_lists SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`,
		status, id, userID,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByID(id, userID)
}

func (s *ShoppingListStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete shopping list entry",
		`DELETE FROM shopping_lists WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}
