package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

func scanItem(scanner interface{ Scan(...any) error }) (*model.Item, error) {
	var i model.Item
	var categoryID, locationID sql.NullInt64
	var expiryDate, barcode sql.NullString

	err := scanner.Scan(
		&i.ID, &i.UserID, &i.Name, &categoryID, &i.Quantity, &i.Unit,
		&expiryDate, &i.LowStockLevel, &locationID, &barcode,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		i.CategoryID = &categoryID.Int64
	}
	if locationID.Valid {
		i.LocationID = &locationID.Int64
	}
	if expiryDate.Valid {
		i.ExpiryDate = &expiryDate.String
	}
	if barcode.Valid {
		i.Barcode = &barcode.String
	}
	return &i, nil
}

// scanItemWithNames scans itemCols plus joined category and location names.
func scanItemWithNames(scanner interface{ Scan(...any) error }, withLocation bool) (*model.Item, error) {
	var i model.Item
	var categoryID, locationID sql.NullInt64
	var expiryDate, barcode sql.NullString
	var categoryName, locationName sql.NullString

	dest := []any{
		&i.ID, &i.UserID, &i.Name, &categoryID, &i.Quantity, &i.Unit,
		&expiryDate, &i.LowStockLevel, &locationID, &barcode,
		&i.CreatedAt, &i.UpdatedAt, &categoryName,
	}
	if withLocation {
		dest = append(dest, &locationName)
	}
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}

	if categoryID.Valid {
		i.CategoryID = &categoryID.Int64
	}
	if locationID.Valid {
		i.LocationID = &locationID.Int64
	}
	if expiryDate.Valid {
		i.ExpiryDate = &expiryDate.String
	}
	if barcode.Valid {
		i.Barcode = &barcode.String
	}
	if categoryName.Valid {
		i.CategoryName = &categoryName.String
	}
	if locationName.Valid {
		i.LocationName = &locationName.String
	}
	return &i, nil
}

const itemCols = `i.id, i.user_id, i.name, i.category_id, i.quantity, i.unit, i.expiry_date, i.low_stock_level, i.location_id, i.barcode, i.created_at, i.updated_at`

func (s *ItemStore) List(userID int64) ([]model.Item, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+`, c.name, l.name
		 FROM items i
		 LEFT JOIN categories c ON i.category_id = c.id
		 LEFT JOIN locations l ON i.location_id = l.id
		 WHERE i.user_id = ?
		 ORDER BY i.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		i, err := scanItemWithNames(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (s *ItemStore) GetByID(id, userID int64) (*model.Item, error) {
	row := s.db.QueryRow(
		`SELECT `+itemCols+` FROM items i WHERE i.id = ? AND i.user_id = ?`,
		id, userID,
	)
	i, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return i, nil
}

func (s *ItemStore) Create(userID int64, name string, categoryID *int64, quantity float64, unit string, expiryDate *string, lowStockLevel float64, locationID *int64, barcode *string) (*model.Item, error) {
	result, err := s.db.Exec(
		`INSERT INTO items (user_id, name, category_id, quantity, unit, expiry_date, low_stock_level, location_id, barcode)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, name, nullInt64(categoryID), quantity, unit,
		nullString(expiryDate), lowStockLevel, nullInt64(locationID), nullString(barcode),
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *ItemStore) Update(id, userID int64, name string, categoryID *int64, quantity float64, unit string, expiryDate *string, lowStockLevel float64, locationID *int64, barcode *string) (*model.Item, error) {
	err := execOwned(s.db, "update item",
		`UPDATE items
		 SET name = ?, category_id = ?, quantity = ?, unit = ?, expiry_date = ?,
		     low_stock_level = ?, location_id = ?, barcode = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		name, nullInt64(categoryID), quantity, unit, nullString(expiryDate),
		lowStockLevel, nullInt64(locationID), nullString(barcode), id, userID,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByID(id, userID)
}

func (s *ItemStore) UpdateQuantity(id, userID int64, quantity float64) (*model.Item, error) {
	err := execOwned(s.db, "update item quantity",
		`UPDATE items SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?`,
		quantity, id, userID,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByID(id, userID)
}

func (s *ItemStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete item",
		`DELETE FROM items WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}

// ListExpiring returns items whose expiry date falls within the next seven
// days. Already-expired items match too; the window has no lower bound.
func (s *ItemStore) ListExpiring(userID int64) ([]model.Item, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+`, c.name
		 FROM items i
		 LEFT JOIN categories c ON i.category_id = c.id
		 WHERE i.user_id = ? AND i.expiry_date IS NOT NULL AND i.expiry_date <= date('now', '+7 days')
		 ORDER BY i.expiry_date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list expiring items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		i, err := scanItemWithNames(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan expiring item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

// ListLowStock returns items at or below their low-stock level,
// lowest quantity first.
func (s *ItemStore) ListLowStock(userID int64) ([]model.Item, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+`, c.name
		 FROM items i
		 LEFT JOIN categories c ON i.category_id = c.id
		 WHERE i.user_id = ? AND i.quantity <= i.low_stock_level
		 ORDER BY i.quantity ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		i, err := scanItemWithNames(rows, false)
		if err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}
