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

type ShoppingListHandler struct {
	shoppingListStore *store.ShoppingListStore
	hub               *websocket.Hub
	logger            *slog.Logger
}

func NewShoppingListHandler(sls *store.ShoppingListStore, hub *websocket.Hub, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingListStore: sls, hub: hub, logger: logger}
}

func (h *ShoppingListHandler) broadcast(userID int64, msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(userID, msg)
	}
}

func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	entries, err := h.shoppingListStore.List(userID)
	if err != nil {
		h.logger.Error("list shopping list", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if entries == nil {
		entries = []model.ShoppingListEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries})
}

func (h *ShoppingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req struct {
		ItemID   *int64  `json:"item_id"`
		ItemName string  `json:"item_name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		VendorID *int64  `json:"vendor_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	entry, err := h.shoppingListStore.Create(userID, req.ItemID, req.ItemName, req.Quantity, req.Unit, req.VendorID)
	if err != nil {
		h.logger.Error("create shopping list entry", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("shopping_list", "created", entry.ID, nil))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Item added to list successfully",
		"item":    entry,
	})
}

func (h *ShoppingListHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	entry, err := h.shoppingListStore.UpdateStatus(id, userID, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.logger.Error("update shopping list status", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("shopping_list", "updated", id, nil))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Status updated successfully",
		"item":    entry,
	})
}

func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.shoppingListStore.Delete(id, userID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		h.logger.Error("delete shopping list entry", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("shopping_list", "deleted", id, nil))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
