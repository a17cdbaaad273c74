package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. The schema is small enough that a
// single idempotent migration serves both the daemon and tests.
func (db *DB) RunMigrations() error {
	migration := `
-- Nests: one per installation today, keyed for more
CREATE TABLE IF NOT EXISTS nests (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Pet snapshots: stage is authoritative on reload, age accumulates
CREATE TABLE IF NOT EXISTS pets (
    id TEXT PRIMARY KEY,
    nest_id TEXT NOT NULL,
    name TEXT NOT NULL,
    stage TEXT NOT NULL CHECK(stage IN ('egg', 'hatchling', 'juvenile', 'adult')),
    age_ns INTEGER NOT NULL DEFAULT 0,
    stage_entered_ns INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (nest_id) REFERENCES nests(id)
);
CREATE INDEX IF NOT EXISTS idx_nest_pets ON pets(nest_id);

-- Growth log: one row per stage transition
CREATE TABLE IF NOT EXISTS growth_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nest_id TEXT NOT NULL,
    pet_id TEXT NOT NULL,
    pet_name TEXT NOT NULL,
    from_stage TEXT NOT NULL,
    to_stage TEXT NOT NULL,
    age_ns INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (nest_id) REFERENCES nests(id),
    FOREIGN KEY (pet_id) REFERENCES pets(id)
);
CREATE INDEX IF NOT EXISTS idx_pet_growth ON growth_log(pet_id);
CREATE INDEX IF NOT EXISTS idx_growth_created ON growth_log(created_at);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
