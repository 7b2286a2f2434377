package store

import (
	"database/sql"
	"fmt"

	"github.com/stocksavvy/stocksavvy/internal/model"
)

type PaymentStore struct {
	db *sql.DB
}

func NewPaymentStore(db *sql.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func scanPayment(scanner interface{ Scan(...any) error }) (*model.Payment, error) {
	var p model.Payment
	var paymentID sql.NullString

	err := scanner.Scan(
		&p.ID, &p.UserID, &p.GatewayOrderID, &paymentID, &p.Amount,
		&p.PlanType, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentID.Valid {
		p.GatewayPaymentID = &paymentID.String
	}
	return &p, nil
}

const paymentCols = `id, user_id, gateway_order_id, gateway_payment_id, amount, plan_type, status, created_at`

// CreateOrder records a pending payment for a freshly generated gateway
// order id.
func (s *PaymentStore) CreateOrder(userID int64, orderID string, amount float64, planType string) (*model.Payment, error) {
	result, err := s.db.Exec(
		`INSERT INTO payments (user_id, gateway_order_id, amount, plan_type, status) VALUES (?, ?, ?, ?, 'pending')`,
		userID, orderID, amount, planType,
	)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id, userID)
}

func (s *PaymentStore) GetByID(id, userID int64) (*model.Payment, error) {
	row := s.db.QueryRow(
		`SELECT `+paymentCols+` FROM payments WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (s *PaymentStore) GetByOrderID(orderID string, userID int64) (*model.Payment, error) {
	row := s.db.QueryRow(
		`SELECT `+paymentCols+` FROM payments WHERE gateway_order_id = ? AND user_id = ?`,
		orderID, userID,
	)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get payment by order id: %w", err)
	}
	return p, nil
}

// MarkSuccess records the gateway payment id and moves the order to
// success. The order is matched by gateway order id and owner.
func (s *PaymentStore) MarkSuccess(orderID string, userID int64, paymentID string) (*model.Payment, error) {
	err := execOwned(s.db, "mark payment success",
		`UPDATE payments SET gateway_payment_id = ?, status = 'success' WHERE gateway_order_id = ? AND user_id = ?`,
		paymentID, orderID, userID,
	)
	if err != nil {
		return nil, err
	}
	return s.GetByOrderID(orderID, userID)
}

// History lists the user's payments, newest first.
func (s *PaymentStore) History(userID int64) ([]model.Payment, error) {
	rows, err := s.db.Query(
		`SELECT `+paymentCols+` FROM payments WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}
