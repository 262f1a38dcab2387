// Package sqlite provides the local fallback implementation of storage.Store.
//
// History is kept as one JSON-array blob per identity, mirroring the
// key-value layout of the original client-side store: every operation reads
// the whole collection, rewrites it, and writes it back as a unit. There is
// no per-record granularity, so two concurrent writers for the same identity
// race and the later write wins.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/preciosa-app/backend/internal/models"
	"github.com/preciosa-app/backend/internal/storage"
)

// Ensure LocalStore implements storage.Store
var _ storage.Store = (*LocalStore)(nil)

// LocalStore implements storage.Store using SQLite. It also backs the user
// registry and the current-identity snapshot used by the CLI session cache.
type LocalStore struct {
	db *sql.DB
}

// New creates a new LocalStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*LocalStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Create persists the record at the head of the identity's history blob.
// The local backend keeps client-generated ids verbatim.
func (s *LocalStore) Create(ctx context.Context, identity models.Identity, sim models.Simulation) (string, error) {
	if sim.SimulationID() == "" {
		sim = sim.WithID(uuid.New().String())
	}

	sims, err := s.readHistory(ctx, identity)
	if err != nil {
		return "", &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "create", Err: err}
	}

	// Prepend: the blob is kept newest-insertion-first.
	sims = append([]models.Simulation{sim}, sims...)

	if err := s.writeHistory(ctx, identity, sims); err != nil {
		return "", &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "create", Err: err}
	}

	return sim.SimulationID(), nil
}

// List returns the identity's records newest first by date.
func (s *LocalStore) List(ctx context.Context, identity models.Identity) ([]models.Simulation, error) {
	sims, err := s.readHistory(ctx, identity)
	if err != nil {
		return nil, &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "list", Err: err}
	}

	models.SortNewestFirst(sims)
	return sims, nil
}

// Delete removes the record with the given id. Absent ids are a no-op.
func (s *LocalStore) Delete(ctx context.Context, identity models.Identity, id string) error {
	sims, err := s.readHistory(ctx, identity)
	if err != nil {
		return &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "delete", Err: err}
	}

	kept := sims[:0]
	for _, sim := range sims {
		if sim.SimulationID() != id {
			kept = append(kept, sim)
		}
	}
	if len(kept) == len(sims) {
		return nil
	}

	if err := s.writeHistory(ctx, identity, kept); err != nil {
		return &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "delete", Err: err}
	}
	return nil
}

// Clear drops the identity's entire history blob.
func (s *LocalStore) Clear(ctx context.Context, identity models.Identity) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM simulation_history WHERE identity = ?",
		identity.ID,
	)
	if err != nil {
		return &storage.PersistenceError{Backend: storage.BackendSQLite, Op: "clear", Err: err}
	}
	return nil
}

func (s *LocalStore) readHistory(ctx context.Context, identity models.Identity) ([]models.Simulation, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		"SELECT records FROM simulation_history WHERE identity = ?",
		identity.ID,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return []models.Simulation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	sims, err := models.DecodeHistory([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return sims, nil
}

func (s *LocalStore) writeHistory(ctx context.Context, identity models.Identity, sims []models.Simulation) error {
	blob, err := models.EncodeHistory(sims)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO simulation_history (identity, records) VALUES (?, ?)
		ON CONFLICT(identity) DO UPDATE SET records = excluded.records`,
		identity.ID, string(blob),
	)
	if err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
