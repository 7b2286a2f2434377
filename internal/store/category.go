package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func scanCategory(scanner interface{ Scan(...any) error }) (*model.Category, error) {
	var c model.Category
	var parent sql.NullString
	var isDefault int

	err := scanner.Scan(&c.ID, &c.UserID, &c.Name, &parent, &isDefault, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	if parent.Valid {
		c.ParentCategory = &parent.String
	}
	c.IsDefault = isDefault != 0
	return &c, nil
}

const categoryCols = `id, user_id, name, parent_category, is_default, created_at`

// List returns the shared default categories plus the user's custom ones.
func (s *CategoryStore) List(userID int64) ([]model.Category, error) {
	rows, err := s.db.Query(
		`SELECT `+categoryCols+` FROM categories
		 WHERE user_id = ? OR is_default = 1
		 ORDER BY parent_category ASC, name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (s *CategoryStore) GetByID(id int64) (*model.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryCols+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (s *CategoryStore) Create(userID int64, name string, parentCategory *string) (*model.Category, error) {
	result, err := s.db.Exec(
		`INSERT INTO categories (user_id, name, parent_category, is_default) VALUES (?, ?, ?, 0)`,
		userID, name, nullString(parentCategory),
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a custom category. Defaults are protected by the
// is_default filter, so deleting one reports ErrNotFound like any other
// non-owned row.
func (s *CategoryStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete category",
		`DELETE FROM categories WHERE id = ? AND user_id = ? AND is_default = 0`,
		id, userID,
	)
}
