package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/XSAM/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	_ "modernc.org/sqlite"
)

// SQLite is the embedded storage engine backed by a local store file.
// It implements Engine; nothing outside this package touches the *sql.DB.
type SQLite struct {
	db *sql.DB
}

var _ Engine = (*SQLite)(nil)

// Open creates an engine bound to the store at path with OpenTelemetry
// instrumentation. Foreign key enforcement is switched on at the engine;
// referential integrity is its job, not the application's.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := otelsql.Open("sqlite", dsn,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName("medblocks"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage engine: %w", err)
	}

	// Register database stats for metrics
	_, err = otelsql.RegisterDBStatsMetrics(db,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName("medblocks"),
		),
	)
	if err != nil {
		log.Printf("Warning: failed to register database stats metrics: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping storage engine: %w", err)
	}

	// Single connection: the store is a local file with one logical client.
	db.SetMaxOpenConns(1)

	return &SQLite{db: db}, nil
}

// Execute runs one or more statements with no parameter binding and no
// result rows. Used for schema DDL.
func (e *SQLite) Execute(ctx context.Context, statements string) error {
	_, err := e.db.ExecContext(ctx, statements)
	return err
}

// Query runs a single statement with positional parameters and returns
// all result rows as loosely-typed records.
func (e *SQLite) Query(ctx context.Context, statement string, args ...any) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Close releases the underlying store.
func (e *SQLite) Close() error {
	return e.db.Close()
}
