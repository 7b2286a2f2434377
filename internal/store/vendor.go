package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type VendorStore struct {
	db *sql.DB
}

func NewVendorStore(db *sql.DB) *VendorStore {
	return &VendorStore{db: db}
}

func scanVendor(scanner interface{ Scan(...any) error }) (*model.Vendor, error) {
	var v model.Vendor
	err := scanner.Scan(
		&v.ID, &v.UserID, &v.Name, &v.ContactPerson, &v.Phone,
		&v.Email, &v.Address, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

const vendorCols = `id, user_id, name, contact_person, phone, email, address, created_at`

func (s *VendorStore) List(userID int64) ([]model.Vendor, error) {
	rows, err := s.db.Query(
		`SELECT `+vendorCols+` FROM vendors WHERE user_id = ? ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []model.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, *v)
	}
	return vendors, rows.Err()
}

func (s *VendorStore) GetByID(id, userID int64) (*model.Vendor, error) {
	row := s.db.QueryRow(
		`SELECT `+vendorCols+` FROM vendors WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	v, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

func (s *VendorStore) Create(userID int64, name, contactPerson, phone, email, address string) (*model.Vendor, error) {
	result, err := s.db.Exec(
		`INSERT INTO vendors (user_id, name, contact_person, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, name, contactPerson, phone, email, address,
	)
	if err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *VendorStore) Update(id, userID int64, name, contactPerson, phone, email, address string) (*model.Vendor, error) {
	err := execOwned(s.db, "update vendor",
		`UPDATE vendors SET name = ?, contact_person = ?, phone = ?, email = ?, address = ?
		 WHERE id = ? AND user_id = ?`,
		name, contactPerson, phone, email, address, id, userID,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByID(id, userID)
}

func (s *VendorStore) Delete(id, userID int64) error {
	return execOwned(s.db, "delete vendor",
		`DELETE FROM vendors WHERE id = ? AND user_id = ?`,
		id, userID,
	)
}
