package handler

import (
	"net/http"

	"github.com/preciosa-app/backend/internal/storage"
)

// HealthHandler reports liveness and which backend was resolved at startup.
type HealthHandler struct {
	backend storage.Backend
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(backend storage.Backend) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// ServeHTTP handles GET /healthz.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": string(h.backend),
	})
}
