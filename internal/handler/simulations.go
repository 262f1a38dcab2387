package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/internal/service"
	"github.com/preciosa-app/backend/internal/session"
)

// SaveRequest asks for a calculation to be computed and persisted. Inputs is
// decoded according to the type discriminator.
type SaveRequest struct {
	Type   models.SimulationType `json:"type"`
	Inputs json.RawMessage       `json:"inputs"`
}

// HistoryResponse wraps the identity's record list.
type HistoryResponse struct {
	Simulations []models.Simulation `json:"simulations"`
}

// SimulationHandler exposes calculation and history endpoints.
type SimulationHandler struct {
	svc    *service.SimulationService
	logger *slog.Logger
}

// NewSimulationHandler creates a new simulation handler.
func NewSimulationHandler(svc *service.SimulationService, logger *slog.Logger) *SimulationHandler {
	return &SimulationHandler{svc: svc, logger: logger}
}

// Pricing handles POST /api/v1/pricing: compute only, nothing persisted.
func (h *SimulationHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	var inputs models.PricingInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.svc.PricePoints(inputs)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Salary handles POST /api/v1/salary: compute only, nothing persisted.
func (h *SimulationHandler) Salary(w http.ResponseWriter, r *http.Request) {
	var inputs models.SalaryInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.svc.SalaryPlan(inputs)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Save handles POST /api/v1/simulations: compute and persist under the
// authenticated identity, returning the stored record.
func (h *SimulationHandler) Save(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Type {
	case models.TypePricing:
		var inputs models.PricingInputs
		if err := json.Unmarshal(req.Inputs, &inputs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid pricing inputs")
			return
		}
		sim, err := h.svc.RecordPricing(r.Context(), identity, inputs)
		if err != nil {
			h.logger.Warn("Failed to save pricing simulation", "identity", identity.ID, "error", err)
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, sim)
	case models.TypeSalary:
		var inputs models.SalaryInputs
		if err := json.Unmarshal(req.Inputs, &inputs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid salary inputs")
			return
		}
		sim, err := h.svc.RecordSalary(r.Context(), identity, inputs)
		if err != nil {
			h.logger.Warn("Failed to save salary simulation", "identity", identity.ID, "error", err)
			writeError(w, statusFor(err), err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, sim)
	default:
		writeError(w, http.StatusBadRequest, "unknown simulation type")
	}
}

// List handles GET /api/v1/simulations.
func (h *SimulationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sims, err := h.svc.History(r.Context(), identity)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Simulations: sims})
}

// Delete handles DELETE /api/v1/simulations/{id}.
func (h *SimulationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.Forget(r.Context(), identity, r.PathValue("id")); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/simulations.
func (h *SimulationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.svc.Reset(r.Context(), identity); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
