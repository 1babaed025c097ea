package db

import (
	"context"
	"log"
	"sync"

	"github.com/medblocks/records-service/internal/engine"
)

// Factory constructs a storage engine handle.
type Factory func() (engine.Engine, error)

// Provider hands out the process-wide engine handle, constructing it and
// running the schema bootstrap on first use. Concurrent first calls share
// a single in-flight initialization, so at most one engine is ever
// constructed and the bootstrap runs at most once. A failed attempt
// leaves the provider uninitialized; the next Get retries.
type Provider struct {
	factory Factory

	mu       sync.Mutex
	eng      engine.Engine
	inflight *initAttempt
}

type initAttempt struct {
	done chan struct{}
	eng  engine.Engine
	err  error
}

func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// Get returns the shared engine handle, initializing it if needed. All
// callers awaiting the same initialization observe the same outcome.
func (p *Provider) Get(ctx context.Context) (engine.Engine, error) {
	p.mu.Lock()
	if p.eng != nil {
		eng := p.eng
		p.mu.Unlock()
		return eng, nil
	}
	if p.inflight != nil {
		attempt := p.inflight
		p.mu.Unlock()
		return attempt.wait(ctx)
	}
	attempt := &initAttempt{done: make(chan struct{})}
	p.inflight = attempt
	p.mu.Unlock()

	go p.initialize(attempt)
	return attempt.wait(ctx)
}

// Close releases the engine if it was ever constructed.
func (p *Provider) Close() error {
	p.mu.Lock()
	eng := p.eng
	p.eng = nil
	p.mu.Unlock()

	if eng == nil {
		return nil
	}
	return eng.Close()
}

func (a *initAttempt) wait(ctx context.Context) (engine.Engine, error) {
	select {
	case <-a.done:
		return a.eng, a.err
	case <-ctx.Done():
		// The initialization itself keeps running; only this caller
		// gives up.
		return nil, ctx.Err()
	}
}

// initialize runs under its own context: a shared attempt must not be
// aborted by whichever caller happened to start it.
func (p *Provider) initialize(attempt *initAttempt) {
	eng, err := p.factory()
	if err == nil {
		if berr := ensureSchema(context.Background(), eng); berr != nil {
			eng.Close()
			eng, err = nil, berr
		}
	}

	p.mu.Lock()
	if err != nil {
		attempt.err = &InitializationError{Err: err}
	} else {
		attempt.eng = eng
		p.eng = eng
	}
	p.inflight = nil
	p.mu.Unlock()

	close(attempt.done)

	if err == nil {
		log.Println("✓ Storage engine initialized")
	} else {
		log.Printf("Failed to initialize storage engine: %v", err)
	}
}
