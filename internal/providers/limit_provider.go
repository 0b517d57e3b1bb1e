package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"match-tracker-service/internal/domain"
)

// rateLimitedProvider wraps a FixtureProvider and enforces a minimum interval
// between upstream calls.
type rateLimitedProvider struct {
	next     FixtureProvider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns a FixtureProvider that spaces calls by at
// least the given interval. Calls block until the interval elapses to avoid
// exceeding upstream quotas.
func NewRateLimitedProvider(next FixtureProvider, interval time.Duration, logger *slog.Logger) FixtureProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}

	if wait := p.reserve(); wait > 0 {
		select {
		case <-ctx.Done():
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return p.next.FetchFixtures(ctx, leagueCode, date)
}

// reserve claims the next call slot and returns how long the caller must wait
// before using it.
func (p *rateLimitedProvider) reserve() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	next := p.last.Add(p.interval)
	if next.Before(now) {
		next = now
	}
	p.last = next
	return next.Sub(now)
}
