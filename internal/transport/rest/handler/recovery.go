package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"aeron/internal/service"
)

// RecoveryHandler handles recovery option generation endpoints
type RecoveryHandler struct {
	recoverySvc *service.RecoveryService
}

// NewRecoveryHandler creates a new recovery handler
func NewRecoveryHandler(recoverySvc *service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{recoverySvc: recoverySvc}
}

// GenerateRequest is the request body for generating recovery options
type GenerateRequest struct {
	Generator       string `json:"generator"`
	ForceRegenerate bool   `json:"forceRegenerate"`
	Count           int    `json:"count"`
}

// Generate handles POST /api/flights/{identifier}/recovery-options
func (h *RecoveryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	var req GenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.Count > 3 {
		req.Count = 3
	}

	outcome, err := h.recoverySvc.GenerateAndPersist(r.Context(), identifier, req.Generator, req.ForceRegenerate, req.Count)
	if err != nil {
		if errors.Is(err, service.ErrDisruptionNotFound) {
			writeError(w, http.StatusNotFound, "flight not found")
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "recovery generation failed",
			"details": err.Error(),
		})
		return
	}

	// Generation failures keep a 200 with the error envelope: the request
	// itself was handled, the generator just could not produce options.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     outcome.Error == "",
		"flight":      outcome.Flight,
		"options":     outcome.Options,
		"steps":       outcome.Steps,
		"metadata":    outcome.Metadata,
		"generator":   outcome.Generator,
		"fromCache":   outcome.FromCache,
		"persistence": outcome.Persistence,
		"error":       outcome.Error,
	})
}

// Get handles GET /api/flights/{identifier}/recovery-options
func (h *RecoveryHandler) Get(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	outcome, err := h.recoverySvc.GetRecoveryOptions(r.Context(), identifier)
	if err != nil {
		if errors.Is(err, service.ErrDisruptionNotFound) {
			writeError(w, http.StatusNotFound, "flight not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"flight":  outcome.Flight,
		"options": outcome.Options,
		"steps":   outcome.Steps,
		"total":   len(outcome.Options),
	})
}
