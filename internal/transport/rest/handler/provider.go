package handler

import (
	"encoding/json"
	"net/http"

	"aeron/internal/llm"
	"aeron/internal/service"
)

// ProviderHandler handles LLM provider endpoints
type ProviderHandler struct {
	registry    *llm.Registry
	broadcaster service.Broadcaster
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(registry *llm.Registry, broadcaster service.Broadcaster) *ProviderHandler {
	return &ProviderHandler{registry: registry, broadcaster: broadcaster}
}

// Get handles GET /api/llm/provider
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	available := h.registry.Available()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"current_provider":    h.registry.CurrentInfo(),
		"available_providers": available,
		"total_providers":     len(available),
	})
}

// SwitchRequest is the request body for switching the active provider
type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Switch handles POST /api/llm/provider/switch
func (h *ProviderHandler) Switch(w http.ResponseWriter, r *http.Request) {
	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.registry.Switch(req.Provider) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":          false,
			"current_provider": h.registry.CurrentInfo(),
		})
		return
	}

	info := h.registry.CurrentInfo()
	if h.broadcaster != nil {
		h.broadcaster.BroadcastToAll(service.EventProviderSwitched, info)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"current_provider": info,
	})
}
