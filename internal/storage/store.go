// Package storage provides abstractions for persistent simulation history.
package storage

import (
	"context"

	"github.com/preciosa-app/backend/internal/models"
)

// Backend names the physical store behind the Store contract. The choice is
// made once at process start and frozen for the process lifetime; there is no
// mid-session failover, which keeps a session's records on a single backend.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Store is the uniform contract over the interchangeable history backends.
// All operations are scoped to one identity; a store must never return or
// mutate another identity's records.
type Store interface {
	// Create persists the record under the given identity and returns the
	// stored id. A backend may assign its own canonical id at write time, in
	// which case the returned id supersedes the client-generated one.
	// Failures are *PersistenceError; the store never retries on its own.
	Create(ctx context.Context, identity models.Identity, sim models.Simulation) (string, error)

	// List returns every record for the identity, newest first by date with
	// ties broken by insertion order. An identity with no records yields an
	// empty slice.
	List(ctx context.Context, identity models.Identity) ([]models.Simulation, error)

	// Delete removes the record with the given id under the identity.
	// Deleting an absent id is a no-op; the call is idempotent.
	Delete(ctx context.Context, identity models.Identity, id string) error

	// Clear removes all records for the identity. On the remote backend this
	// is list-then-delete-each and therefore not atomic; a concurrent Create
	// may or may not survive it.
	Clear(ctx context.Context, identity models.Identity) error

	// Close releases any resources held by the store.
	Close() error
}
