// Package payment wraps the payment gateway collaborator. Order creation is
// local (no live gateway call is made in this build); signature verification
// follows the gateway's checksum scheme so that a live integration can drop
// in behind the same interface.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Gateway creates provisional orders and verifies payment signatures.
type Gateway interface {
	// CreateOrderID returns a new provisional gateway order id.
	CreateOrderID() string
	// VerifySignature reports whether the signature matches the
	// order/payment pair.
	VerifySignature(orderID, paymentID, signature string) bool
	// Enforced reports whether signature verification is active. It is
	// disabled only when no key secret is configured (local development).
	Enforced() bool
}

type Config struct {
	KeyID     string
	KeySecret string
}

type Client struct {
	cfg Config
	now func() time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, now: time.Now}
}

// CreateOrderID generates a time-based provisional order id. It is an
// internal correlation handle, not a cryptographic token; a live gateway
// integration would replace it with the gateway's own order id.
func (c *Client) CreateOrderID() string {
	return fmt.Sprintf("order_%d", c.now().UnixMilli())
}

// VerifySignature checks HMAC-SHA256(order_id|payment_id) against the
// configured key secret, in constant time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.cfg.KeySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) Enforced() bool {
	return c.cfg.KeySecret != ""
}
