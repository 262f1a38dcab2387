package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// simulation_history holds one row per identity; records is that identity's
// entire history serialized as a flat JSON array. current_identity is a
// single-slot snapshot of the logged-in identity, used by the CLI session
// cache.
const schema = `
CREATE TABLE IF NOT EXISTS simulation_history (
    identity TEXT PRIMARY KEY,
    records TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS current_identity (
    slot INTEGER PRIMARY KEY CHECK (slot = 0),
    identity TEXT NOT NULL,
    display_name TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
