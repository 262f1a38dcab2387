// Package handler exposes the HTTP JSON surface over the services.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preciosa-app/backend/internal/calculator"
	"github.com/preciosa-app/backend/internal/storage"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps the error taxonomy onto HTTP statuses: malformed inputs are
// the client's fault, degenerate combinations are unprocessable, and backend
// failures are a bad gateway so the caller knows the record was not saved.
func statusFor(err error) int {
	var validationErr *calculator.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var domainErr *calculator.DomainError
	if errors.As(err, &domainErr) {
		return http.StatusUnprocessableEntity
	}
	var persistenceErr *storage.PersistenceError
	if errors.As(err, &persistenceErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
