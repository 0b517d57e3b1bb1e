package teststubs

import (
	"context"
	"sync"

	"match-tracker-service/internal/domain"
)

// StubPublisher captures published batches for assertions.
type StubPublisher struct {
	mu         sync.Mutex
	Discovered [][]domain.Fixture
	Results    [][]domain.Fixture
	Heartbeats int
	Err        error
}

func (p *StubPublisher) PublishDiscovered(ctx context.Context, fixtures []domain.Fixture) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Discovered = append(p.Discovered, fixtures)
	return p.Err
}

func (p *StubPublisher) PublishResults(ctx context.Context, fixtures []domain.Fixture) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Results = append(p.Results, fixtures)
	return p.Err
}

func (p *StubPublisher) PublishHeartbeat(ctx context.Context) error {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Heartbeats++
	return p.Err
}

// ResultCount returns the total fixtures across all result batches.
func (p *StubPublisher) ResultCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, batch := range p.Results {
		total += len(batch)
	}
	return total
}
