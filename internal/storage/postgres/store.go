package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/internal/storage"
)

// Compile-time interface check.
var _ storage.Store = (*RemoteStore)(nil)

// RemoteStore implements storage.Store using PostgreSQL.
type RemoteStore struct {
	pool *Pool
}

// New connects to the remote backend and ensures the schema exists.
func New(ctx context.Context, dsn string) (*RemoteStore, error) {
	pool, err := NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &RemoteStore{pool: pool}, nil
}

// NewWithPool wraps an existing pool, running migrations. Used by tests.
func NewWithPool(ctx context.Context, pool *Pool) (*RemoteStore, error) {
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &RemoteStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *RemoteStore) Close() error {
	s.pool.Close()
	return nil
}

// Create inserts the record as a new document and returns the server-assigned
// document id, which supersedes the client id from here on.
func (s *RemoteStore) Create(ctx context.Context, identity models.Identity, sim models.Simulation) (string, error) {
	payload, err := json.Marshal(sim)
	if err != nil {
		return "", &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "create", Err: err}
	}

	var docID string
	err = s.pool.QueryRow(ctx, `
		INSERT INTO simulations (identity, client_id, sim_type, date, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING doc_id::text`,
		identity.ID,
		sim.SimulationID(),
		string(sim.SimulationType()),
		sim.CreatedAt(),
		payload,
	).Scan(&docID)
	if err != nil {
		return "", &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "create", Err: err}
	}

	return docID, nil
}

// List returns the identity's documents with server-side ordering by date
// descending; documents sharing a date come back newest-inserted first. Each
// record is rewritten to carry its canonical document id.
func (s *RemoteStore) List(ctx context.Context, identity models.Identity) ([]models.Simulation, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT doc_id::text, payload
		FROM simulations
		WHERE identity = $1
		ORDER BY date DESC, inserted_at DESC`,
		identity.ID,
	)
	if err != nil {
		return nil, &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "list", Err: err}
	}
	defer rows.Close()

	sims := []models.Simulation{}
	for rows.Next() {
		var docID string
		var payload []byte
		if err := rows.Scan(&docID, &payload); err != nil {
			return nil, &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "list", Err: err}
		}

		sim, err := models.DecodeSimulation(payload)
		if err != nil {
			return nil, &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "list", Err: err}
		}
		sims = append(sims, sim.WithID(docID))
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "list", Err: err}
	}

	return sims, nil
}

// Delete removes the document with the given canonical id. Unknown ids are a
// no-op, keeping the call idempotent.
func (s *RemoteStore) Delete(ctx context.Context, identity models.Identity, id string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM simulations
		WHERE identity = $1 AND doc_id::text = $2`,
		identity.ID, id,
	)
	if err != nil {
		return &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "delete", Err: err}
	}
	return nil
}

// Clear removes every document for the identity by listing ids and deleting
// them one by one. There is no bulk-delete primitive assumed, so the compound
// operation is not atomic: a Create racing a Clear may or may not survive.
func (s *RemoteStore) Clear(ctx context.Context, identity models.Identity) error {
	rows, err := s.pool.Query(ctx,
		"SELECT doc_id::text FROM simulations WHERE identity = $1",
		identity.ID,
	)
	if err != nil {
		return &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "clear", Err: err}
	}

	var docIDs []string
	for rows.Next() {
		var docID string
		if err := rows.Scan(&docID); err != nil {
			rows.Close()
			return &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "clear", Err: err}
		}
		docIDs = append(docIDs, docID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return &storage.PersistenceError{Backend: storage.BackendPostgres, Op: "clear", Err: err}
	}

	for _, docID := range docIDs {
		if err := s.Delete(ctx, identity, docID); err != nil {
			return err
		}
	}
	return nil
}
