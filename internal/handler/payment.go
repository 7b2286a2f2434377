package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stocksavvy/stocksavvy/internal/auth"
	"github.com/stocksavvy/stocksavvy/internal/model"
	"github.com/stocksavvy/stocksavvy/internal/payment"
	"github.com/stocksavvy/stocksavvy/internal/store"
)

type PaymentHandler struct {
	paymentStore *store.PaymentStore
	userStore    *store.UserStore
	gateway      payment.Gateway
	logger       *slog.Logger
}

func NewPaymentHandler(ps *store.PaymentStore, us *store.UserStore, gw payment.Gateway, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{paymentStore: ps, userStore: us, gateway: gw, logger: logger}
}

// CreateOrder records a pending payment under a fresh gateway order id.
// No live gateway call is made in this build.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req struct {
		PlanType string  `json:"plan_type"`
		Amount   float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	orderID := h.gateway.CreateOrderID()

	p, err := h.paymentStore.CreateOrder(userID, orderID, req.Amount, req.PlanType)
	if err != nil {
		h.logger.Error("create payment order", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Order created successfully",
		"order_id": orderID,
		"amount":   req.Amount,
		"currency": "INR",
		"payment":  p,
	})
}

// Verify checks the gateway signature, marks the payment successful, and
// activates the caller's subscription for one calendar month.
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Signature string `json:"signature"`
		PlanType  string `json:"plan_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if h.gateway.Enforced() {
		if !h.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
			writeError(w, http.StatusUnauthorized, "invalid payment signature")
			return
		}
	} else {
		h.logger.Warn("payment signature verification skipped: no gateway secret configured",
			"order_id", req.OrderID)
	}

	p, err := h.paymentStore.MarkSuccess(req.OrderID, userID, req.PaymentID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Payment order not found")
		return
	}
	if err != nil {
		h.logger.Error("mark payment success", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	endDate := time.Now().AddDate(0, 1, 0)
	user, err := h.userStore.UpdateSubscription(userID, req.PlanType, "active", endDate)
	if err != nil {
		h.logger.Error("update subscription", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":               "Payment verified successfully",
		"payment":               p,
		"subscription_plan":     user.SubscriptionPlan,
		"subscription_end_date": user.SubscriptionEndDate,
	})
}

// History lists the caller's payments, newest first.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	payments, err := h.paymentStore.History(userID)
	if err != nil {
		h.logger.Error("list payment history", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": payments})
}
