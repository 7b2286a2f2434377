package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type LocationStore struct {
	db *sql.DB
}

func NewLocationStore(db *sql.DB) *LocationStore {
	return &LocationStore{db: db}
}

func scanLocation(scanner interface{ Scan(...any) error }) (*model.Location, error) {
	var l model.Location
	err := scanner.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const locationCols = `id, user_id, name, created_at`

func (s *LocationStore) List(userID int64) ([]model.Location, error) {
	rows, err := s.db.Query(
		`SELECT `+locationCols+` FROM locations WHERE user_id = ? ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, *l)
	}
	return locations, rows.Err()
}

func (s *LocationStore) GetByID(id, userID int64) (*model.Location, error) {
	row := s.db.QueryRow(
		`SELECT `+locationCols+` FROM locations WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	l, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

func (s *LocationStore) Create(userID int64, name string) (*model.Location, error) {
	result, err := s.db.Exec(
		`INSERT INTO locations (user_id, name) VALUES (?, ?)`,
		userID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("insert location: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *LocationStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete location",
		`DELETE FROM locations WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}
