package engine

import "context"

// Row is one result record as returned by the storage engine. Values are
// loosely typed; callers narrow them into their own shapes.
type Row map[string]any

// Engine is the boundary to the embedded storage engine. It is the only
// way application code can reach the database: Execute for DDL bodies,
// Query for single parameterized statements.
type Engine interface {
	Execute(ctx context.Context, statements string) error
	Query(ctx context.Context, statement string, args ...any) ([]Row, error)
	Close() error
}
