package model

import "time"

// Payment tracks one gateway order. Status moves pending -> success;
// GatewayPaymentID is set only once the payment is verified.
type Payment struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID *string   `json:"gateway_payment_id"`
	Amount           float64   `json:"amount"`
	PlanType         string    `json:"plan_type"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
