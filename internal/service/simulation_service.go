package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/preciosa-app/backend/internal/calculator"
	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/internal/observability/metrics"
	"github.com/preciosa-app/backend/internal/storage"
)

// SimulationService ties the formula library to the history store. It owns
// the one debatable policy in the system: what to do when reading history
// fails. The source behavior is to degrade to an empty list; set
// surfaceReadErrors to propagate the failure instead.
type SimulationService struct {
	store             storage.Store
	backend           storage.Backend
	surfaceReadErrors bool
}

// NewSimulationService creates a service over the resolved backend.
func NewSimulationService(store storage.Store, backend storage.Backend, surfaceReadErrors bool) *SimulationService {
	return &SimulationService{
		store:             store,
		backend:           backend,
		surfaceReadErrors: surfaceReadErrors,
	}
}

// Backend reports which physical store was frozen in at startup.
func (s *SimulationService) Backend() storage.Backend {
	return s.backend
}

// PricePoints computes pricing results without persisting anything.
func (s *SimulationService) PricePoints(inputs models.PricingInputs) (models.PricingResults, error) {
	return calculator.Pricing(inputs)
}

// SalaryPlan computes a salary-goal plan without persisting anything.
func (s *SimulationService) SalaryPlan(inputs models.SalaryInputs) (models.SalaryResults, error) {
	return calculator.SalaryPlan(inputs)
}

// RecordPricing computes pricing results and persists them as a new record
// under the identity. Write failures are surfaced so the caller can warn
// that the record was not saved; the service never retries.
func (s *SimulationService) RecordPricing(ctx context.Context, identity models.Identity, inputs models.PricingInputs) (models.PricingSimulation, error) {
	results, err := calculator.Pricing(inputs)
	if err != nil {
		return models.PricingSimulation{}, err
	}

	sim := models.NewPricingSimulation(uuid.New().String(), inputs, results)
	storedID, err := s.store.Create(ctx, identity, sim)
	if err != nil {
		metrics.ObserveStoreFailure("create", string(s.backend))
		return models.PricingSimulation{}, err
	}

	// The stored id is canonical from here on.
	sim.ID = storedID
	metrics.ObserveSimulationSaved(string(models.TypePricing), string(s.backend))
	slog.Info("Pricing simulation saved", "identity", identity.ID, "id", storedID)
	return sim, nil
}

// RecordSalary computes a salary plan and persists it as a new record under
// the identity.
func (s *SimulationService) RecordSalary(ctx context.Context, identity models.Identity, inputs models.SalaryInputs) (models.SalarySimulation, error) {
	results, err := calculator.SalaryPlan(inputs)
	if err != nil {
		return models.SalarySimulation{}, err
	}

	sim := models.NewSalarySimulation(uuid.New().String(), inputs, results)
	storedID, err := s.store.Create(ctx, identity, sim)
	if err != nil {
		metrics.ObserveStoreFailure("create", string(s.backend))
		return models.SalarySimulation{}, err
	}

	sim.ID = storedID
	metrics.ObserveSimulationSaved(string(models.TypeSalary), string(s.backend))
	slog.Info("Salary simulation saved", "identity", identity.ID, "id", storedID)
	return sim, nil
}

// History lists the identity's records, newest first. When the read fails
// and surfaceReadErrors is off, the failure is logged and an empty history
// is returned instead; retrying a partial read has no defined semantics here.
func (s *SimulationService) History(ctx context.Context, identity models.Identity) ([]models.Simulation, error) {
	sims, err := s.store.List(ctx, identity)
	if err != nil {
		metrics.ObserveStoreFailure("list", string(s.backend))
		if s.surfaceReadErrors {
			return nil, err
		}
		slog.Warn("History read failed, returning empty history", "identity", identity.ID, "error", err)
		return []models.Simulation{}, nil
	}
	return sims, nil
}

// Forget deletes one record by id. Idempotent.
func (s *SimulationService) Forget(ctx context.Context, identity models.Identity, id string) error {
	if err := s.store.Delete(ctx, identity, id); err != nil {
		metrics.ObserveStoreFailure("delete", string(s.backend))
		return err
	}
	return nil
}

// Reset clears the identity's entire history.
func (s *SimulationService) Reset(ctx context.Context, identity models.Identity) error {
	if err := s.store.Clear(ctx, identity); err != nil {
		metrics.ObserveStoreFailure("clear", string(s.backend))
		return err
	}
	return nil
}
