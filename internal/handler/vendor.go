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

type VendorHandler struct {
	vendorStore *store.VendorStore
	hub         *websocket.Hub
	logger      *slog.Logger
}

func NewVendorHandler(vs *store.VendorStore, hub *websocket.Hub, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{vendorStore: vs, hub: hub, logger: logger}
}

func (h *VendorHandler) broadcast(userID int64, msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(userID, msg)
	}
}

type vendorRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	vendors, err := h.vendorStore.List(userID)
	if err != nil {
		h.logger.Error("list vendors", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	if vendors == nil {
		vendors = []model.Vendor{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"vendors": vendors})
}

func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	vendor, err := h.vendorStore.Create(userID, req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if err != nil {
		h.logger.Error("create vendor", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("vendor", "created", vendor.ID, nil))

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Vendor added successfully",
		"vendor":  vendor,
	})
}

func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req vendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	vendor, err := h.vendorStore.Update(id, userID, req.Name, req.ContactPerson, req.Phone, req.Email, req.Address)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Vendor not found")
		return
	}
	if err != nil {
		h.logger.Error("update vendor", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("vendor", "updated", id, nil))

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Vendor updated successfully",
		"vendor":  vendor,
	})
}

func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.vendorStore.Delete(id, userID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Vendor not found")
		return
	}
	if err != nil {
		h.logger.Error("delete vendor", "error", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	h.broadcast(userID, websocket.NewMessage("vendor", "deleted", id, nil))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Vendor deleted successfully"})
}
