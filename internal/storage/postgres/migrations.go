package postgres

import "context"

// schema sets up the simulations collection. doc_id is the server-assigned
// canonical identifier; client_id preserves the id the record was created
// with. Queries filter by identity and order by date descending, so the
// composite index covers the hot path.
const schema = `
CREATE TABLE IF NOT EXISTS simulations (
    doc_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    identity TEXT NOT NULL,
    client_id TEXT NOT NULL,
    sim_type TEXT NOT NULL,
    date TIMESTAMPTZ NOT NULL,
    payload JSONB NOT NULL,
    inserted_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_simulations_identity_date
    ON simulations (identity, date DESC, inserted_at DESC);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, pool *Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
