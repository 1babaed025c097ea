package testutil

import (
	"context"
	"sync"

	"github.com/medblocks/records-service/internal/engine"
)

// FakeEngine implements engine.Engine for tests. It records every
// statement it receives and answers queries through QueryFunc.
type FakeEngine struct {
	mu sync.Mutex

	ExecuteErr error
	QueryFunc  func(statement string, args ...any) ([]engine.Row, error)

	Executed []string
	Queries  []string
	Args     [][]any
	Closed   bool
}

var _ engine.Engine = (*FakeEngine)(nil)

func (f *FakeEngine) Execute(ctx context.Context, statements string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Executed = append(f.Executed, statements)
	return f.ExecuteErr
}

func (f *FakeEngine) Query(ctx context.Context, statement string, args ...any) ([]engine.Row, error) {
	f.mu.Lock()
	f.Queries = append(f.Queries, statement)
	f.Args = append(f.Args, args)
	fn := f.QueryFunc
	f.mu.Unlock()

	if fn != nil {
		return fn(statement, args...)
	}
	return nil, nil
}

func (f *FakeEngine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return nil
}

// QueryCount returns how many statements reached the engine.
func (f *FakeEngine) QueryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Queries)
}
