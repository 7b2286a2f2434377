package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stocksavvy/stocksavvy/internal/auth"
	"github.com/stocksavvy/stocksavvy/internal/model"
	"github.com/stocksavvy/stocksavvy/internal/store"
	"github.com/stocksavvy/stocksavvy/internal/websocket"
)

type ItemHandler struct {
	itemStore *store.ItemStore
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewItemHandler(is *store.ItemStore, hub *websocket.Hub, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{itemStore: is, hub: hub, logger: logger}
}

func (h *ItemHandler) broadcast(userID int64, msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(userID, msg)
	}
}

type itemRequest struct {
	Name          string  `json:"name"`
	CategoryID    *int64  `json:"category_id"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	ExpiryDate    *string `json:"expiry_date"`
	LowStockLevel float64 `json:"low_stock_level"`
	LocationID    *int64  `json:"location_id"`
	Barcode       *string `json:"barcode"`
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.itemStore.List(userID)
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.itemStore.Create(userID, req.Name, req.CategoryID, req.Quantity, req.Unit,
		req.ExpiryDate, req.LowStockLevel, req.LocationID, req.Barcode)
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("item", "created", item.ID, nil))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Item added successfully",
		"item":    item,
	})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.itemStore.Update(id, userID, req.Name, req.CategoryID, req.Quantity, req.Unit,
		req.ExpiryDate, req.LowStockLevel, req.LocationID, req.Barcode)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.logger.Error("update item", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("item", "updated", id, nil))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item updated successfully",
		"item":    item,
	})
}

func (h *ItemHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Quantity float64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	item, err := h.itemStore.UpdateQuantity(id, userID, req.Quantity)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.logger.Error("update item quantity", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("item", "updated", id, nil))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Quantity updated successfully",
		"item":    item,
	})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.itemStore.Delete(id, userID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.logger.Error("delete item", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("item", "deleted", id, nil))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// Expiring lists items whose expiry date is within the next seven days,
// including items already past it.
func (h *ItemHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.itemStore.ListExpiring(userID)
	if err != nil {
		h.logger.Error("list expiring items", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// LowStock lists items at or below their low-stock level.
func (h *ItemHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	items, err := h.itemStore.ListLowStock(userID)
	if err != nil {
		h.logger.Error("list low stock items", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
