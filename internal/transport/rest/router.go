package rest

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"aeron/internal/service"
	"aeron/internal/transport/rest/handler"
	"aeron/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	DisruptionService *service.DisruptionService
	RecoveryService   *service.RecoveryService
	SettingsService   *service.SettingsService
	AIService         *service.AIService
	WSHub             *ws.Hub

	// Ping reports datastore health; nil skips the check.
	Ping func(ctx context.Context) error
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	flightHandler := handler.NewFlightHandler(c.DisruptionService)
	recoveryHandler := handler.NewRecoveryHandler(c.RecoveryService)
	providerHandler := handler.NewProviderHandler(c.AIService.Registry(), c.WSHub)
	settingsHandler := handler.NewSettingsHandler(c.SettingsService)
	wsHandler := ws.NewHandler(c.WSHub)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", c.healthHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/flights/{identifier}", flightHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/flights/{identifier}/recovery-options", recoveryHandler.Generate).Methods("POST", "OPTIONS")
	api.HandleFunc("/flights/{identifier}/recovery-options", recoveryHandler.Get).Methods("GET", "OPTIONS")

	api.HandleFunc("/disruptions", flightHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/disruptions", flightHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/disruptions/categories", flightHandler.Categories).Methods("GET", "OPTIONS")

	api.HandleFunc("/llm/provider", providerHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/llm/provider/switch", providerHandler.Switch).Methods("POST", "OPTIONS")

	api.HandleFunc("/settings", settingsHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/settings", settingsHandler.Save).Methods("POST", "OPTIONS")
	api.HandleFunc("/settings/{category}", settingsHandler.ListByCategory).Methods("GET", "OPTIONS")

	// WebSocket route
	api.HandleFunc("/ws/ops", wsHandler.OpsWS).Methods("GET")

	return r
}

func (c *Container) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if c.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := c.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded","datastore":"unreachable"}`))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
