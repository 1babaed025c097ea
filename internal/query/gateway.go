// Package query runs caller-supplied read-only SQL under a restrictive
// policy: the statement must start with SELECT and may not stack further
// statements. Anything else, including engine-reported errors, comes back
// as a plain failure result; no error ever crosses this boundary.
//
// Known limitation, accepted for a trusted local operator: a
// select-prefixed statement can still invoke side-effecting engine
// functions. The policy blocks statement stacking, not such selects.
package query

import (
	"context"
	"strings"

	"github.com/medblocks/records-service/internal/engine"
)

// EngineProvider hands out the shared storage engine handle.
type EngineProvider interface {
	Get(ctx context.Context) (engine.Engine, error)
}

// Result is the outcome of one gateway run. Rows is always non-nil so a
// failure renders as an empty set, never as a null.
type Result struct {
	Success bool         `json:"success"`
	Rows    []engine.Row `json:"rows"`
}

type Gateway struct {
	provider EngineProvider
}

func NewGateway(provider EngineProvider) *Gateway {
	return &Gateway{provider: provider}
}

// Run executes one read-only statement and returns its rows, or a
// failure result when the statement violates policy or the engine
// rejects it.
func (g *Gateway) Run(ctx context.Context, text string) Result {
	stmt := strings.TrimSpace(text)

	if !strings.HasPrefix(strings.ToLower(stmt), "select") {
		return failure()
	}
	if strings.Count(stmt, ";") > 1 {
		return failure()
	}

	eng, err := g.provider.Get(ctx)
	if err != nil {
		return failure()
	}

	rows, err := eng.Query(ctx, stmt)
	if err != nil {
		return failure()
	}
	if rows == nil {
		rows = []engine.Row{}
	}
	return Result{Success: true, Rows: rows}
}

func failure() Result {
	return Result{Success: false, Rows: []engine.Row{}}
}
