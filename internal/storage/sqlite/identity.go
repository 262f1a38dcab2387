package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/preciosa-app/backend/internal/models"
)

// SaveCurrentIdentity records the logged-in identity in the single snapshot
// slot, replacing any previous one. Called at login.
func (s *LocalStore) SaveCurrentIdentity(ctx context.Context, identity models.Identity) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO current_identity (slot, identity, display_name) VALUES (0, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET identity = excluded.identity, display_name = excluded.display_name`,
		identity.ID, identity.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("failed to save current identity: %w", err)
	}
	return nil
}

// CurrentIdentity returns the stored identity snapshot, or nil when nobody
// is logged in.
func (s *LocalStore) CurrentIdentity(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	err := s.db.QueryRowContext(ctx,
		"SELECT identity, display_name FROM current_identity WHERE slot = 0",
	).Scan(&identity.ID, &identity.DisplayName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read current identity: %w", err)
	}
	return &identity, nil
}

// ClearCurrentIdentity empties the snapshot slot. Called at logout.
func (s *LocalStore) ClearCurrentIdentity(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM current_identity WHERE slot = 0"); err != nil {
		return fmt.Errorf("failed to clear current identity: %w", err)
	}
	return nil
}
