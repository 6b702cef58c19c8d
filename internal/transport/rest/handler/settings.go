package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"aeron/internal/model"
	"aeron/internal/service"
)

// SettingsHandler handles tenant settings endpoints
type SettingsHandler struct {
	settingsSvc *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsSvc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// List handles GET /api/settings
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
}

// ListByCategory handles GET /api/settings/{category}
func (h *SettingsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	settings, err := h.settingsSvc.ListByCategory(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"settings": settings})
}

// Save handles POST /api/settings
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var setting model.Setting
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settingsSvc.Save(r.Context(), &setting); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, setting)
}
