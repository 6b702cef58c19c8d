package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aeron/internal/model"
	"aeron/internal/service"
)

// FlightHandler handles disruption intake and lookup endpoints
type FlightHandler struct {
	disruptionSvc *service.DisruptionService
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(disruptionSvc *service.DisruptionService) *FlightHandler {
	return &FlightHandler{disruptionSvc: disruptionSvc}
}

// Get handles GET /api/flights/{identifier}
func (h *FlightHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	disruption, err := h.disruptionSvc.Get(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, service.ErrDisruptionNotFound) {
			writeError(w, http.StatusNotFound, "flight not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, disruption)
}

// List handles GET /api/disruptions
func (h *FlightHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	severity := r.URL.Query().Get("severity")

	disruptions, err := h.disruptionSvc.List(r.Context(), status, severity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"disruptions": disruptions,
		"total":       len(disruptions),
	})
}

// Create handles POST /api/disruptions
func (h *FlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var disruption model.FlightDisruption
	if err := json.NewDecoder(r.Body).Decode(&disruption); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.disruptionSvc.Create(r.Context(), &disruption)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Categories handles GET /api/disruptions/categories
func (h *FlightHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.disruptionSvc.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
