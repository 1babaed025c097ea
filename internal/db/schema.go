package db

import (
	"context"
	"fmt"

	"github.com/medblocks/records-service/internal/engine"
)

// Every object is create-if-absent, so re-running the bootstrap is a
// no-op. complaints carries the foreign key, so patients must exist
// before it is created.
const createTables = `
	CREATE TABLE IF NOT EXISTS patients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		address TEXT,
		email TEXT,
		dob TEXT NOT NULL,
		sex TEXT NOT NULL,
		height REAL,
		weight REAL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS complaints (
		id INTEGER PRIMARY KEY,
		patient_id INTEGER NOT NULL,
		date TEXT NOT NULL,
		complaint TEXT NOT NULL,
		doctor TEXT NOT NULL,
		medicine TEXT NOT NULL,
		FOREIGN KEY(patient_id) REFERENCES patients(id)
	);
`

// Secondary index on patients.name for prefix search.
const createIndexes = `
	CREATE INDEX IF NOT EXISTS idx_patient_name ON patients (name);
`

// ensureSchema applies the schema bootstrap. Any DDL failure aborts the
// initialization attempt that requested it.
func ensureSchema(ctx context.Context, eng engine.Engine) error {
	if err := eng.Execute(ctx, createTables); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := eng.Execute(ctx, createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
