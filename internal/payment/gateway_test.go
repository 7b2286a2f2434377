package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func TestCreateOrderID(t *testing.T) {
	c := NewClient(Config{KeySecret: "secret"})
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }

	id := c.CreateOrderID()
	if id != "order_1700000000000" {
		t.Errorf("order id = %q, want order_1700000000000", id)
	}
	if !strings.HasPrefix(id, "order_") {
		t.Errorf("order id %q missing order_ prefix", id)
	}
}

func TestVerifySignature(t *testing.T) {
	c := NewClient(Config{KeySecret: "test-key-secret"})

	mac := hmac.New(sha256.New, []byte("test-key-secret"))
	mac.Write([]byte("order_123|pay_456"))
	sig := hex.EncodeToString(mac.Sum(nil))

	if !c.VerifySignature("order_123", "pay_456", sig) {
		t.Error("valid signature rejected")
	}
	if c.VerifySignature("order_123", "pay_456", sig[:len(sig)-1]+"x") {
		t.Error("tampered signature accepted")
	}
	if c.VerifySignature("order_999", "pay_456", sig) {
		t.Error("signature for different order accepted")
	}
	if c.VerifySignature("order_123", "pay_456", "") {
		t.Error("empty signature accepted")
	}
}

func TestEnforced(t *testing.T) {
	if !NewClient(Config{KeySecret: "x"}).Enforced() {
		t.Error("configured secret should enforce verification")
	}
	if NewClient(Config{}).Enforced() {
		t.Error("missing secret should not enforce verification")
	}
}
