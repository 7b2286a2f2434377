package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	var endDate sql.NullTime

	err := scanner.Scan(
		&u.ID, &u.Name, &u.Email, &u.SubscriptionPlan, &u.SubscriptionStatus,
		&endDate, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endDate.Valid {
		u.SubscriptionEndDate = &endDate.Time
	}
	return &u, nil
}

const userCols = `id, name, email, subscription_plan, subscription_status, subscription_end_date, created_at`

func (s *UserStore) Create(name, email, passwordHash string) (*model.User, error) {
	result, err := s.db.Exec(
		`INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)`,
		name, email, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByEmail(email string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetPasswordHash returns the stored bcrypt hash for the email, or "" when
// no such user exists.
func (s *UserStore) GetPasswordHash(email string) (string, error) {
	var hash string
	err := s.db.QueryRow(`SELECT password_hash FROM users WHERE email = ?`, email).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get password hash: %w", err)
	}
	return hash, nil
}

// UpdateSubscription activates a plan until the given end date, replacing
// whatever subscription state the user had before.
func (s *UserStore) UpdateSubscription(id int64, plan, status string, endDate time.Time) (*model.User, error) {
	err := execOwned(s.db, "update subscription",
		`UPDATE users SET subscription_plan = ?, subscription_status = ?, subscription_end_date = ? WHERE id = ?`,
		plan, status, endDate.UTC(), id,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
