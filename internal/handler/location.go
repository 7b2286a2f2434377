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

type LocationHandler struct {
	locationStore *store.LocationStore
	hub           *websocket.Hub
	logger        *slog.Logger
}

func NewLocationHandler(ls *store.LocationStore, hub *websocket.Hub, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{locationStore: ls, hub: hub, logger: logger}
}

func (h *LocationHandler) broadcast(userID int64, msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(userID, msg)
	}
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	locations, err := h.locationStore.List(userID)
	if err != nil {
		h.logger.Error("list locations", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if locations == nil {
		locations = []model.Location{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"locations": locations})
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	location, err := h.locationStore.Create(userID, req.Name)
	if err != nil {
		h.logger.Error("create location", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("location", "created", location.ID, nil))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Location added successfully",
		"location": location,
	})
}

func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.locationStore.Delete(id, userID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	if err != nil {
		h.logger.Error("delete location", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("location", "deleted", id, nil))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}
