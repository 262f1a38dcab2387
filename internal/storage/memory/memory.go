// Package memory provides an in-memory implementation of storage.Store,
// used as a test double by the service and handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/internal/storage"
)

// Compile-time interface check.
var _ storage.Store = (*Store)(nil)

// Store keeps per-identity history in a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	data map[string][]models.Simulation // keyed by identity id, newest-insertion-first
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		data: make(map[string][]models.Simulation),
	}
}

// Create prepends the record to the identity's history.
func (s *Store) Create(_ context.Context, identity models.Identity, sim models.Simulation) (string, error) {
	if sim.SimulationID() == "" {
		sim = sim.WithID(uuid.New().String())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[identity.ID] = append([]models.Simulation{sim}, s.data[identity.ID]...)
	return sim.SimulationID(), nil
}

// List returns a copy of the identity's history, newest first by date.
func (s *Store) List(_ context.Context, identity models.Identity) ([]models.Simulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sims := make([]models.Simulation, len(s.data[identity.ID]))
	copy(sims, s.data[identity.ID])
	models.SortNewestFirst(sims)
	return sims, nil
}

// Delete removes the record with the given id; absent ids are a no-op.
func (s *Store) Delete(_ context.Context, identity models.Identity, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sims := s.data[identity.ID]
	kept := make([]models.Simulation, 0, len(sims))
	for _, sim := range sims {
		if sim.SimulationID() != id {
			kept = append(kept, sim)
		}
	}
	s.data[identity.ID] = kept
	return nil
}

// Clear drops the identity's entire history.
func (s *Store) Clear(_ context.Context, identity models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, identity.ID)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
