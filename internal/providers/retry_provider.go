package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/metrics"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a FixtureProvider with exponential backoff retries.
type retryingProvider struct {
	inner          FixtureProvider
	logger         *slog.Logger
	metrics        *metrics.Recorder
	name           string
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries or
// initialBackoff are <= 0, defaults are used.
func NewRetryingProvider(inner FixtureProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, initialBackoff time.Duration) FixtureProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		metrics:        recorder,
		name:           name,
		maxRetries:     uint64(maxRetries),
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error) {
	var fixtures []domain.Fixture

	operation := func() error {
		start := time.Now()
		result, err := r.inner.FetchFixtures(ctx, leagueCode, date)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err != nil {
			// Only transport failures are worth retrying; a decode failure
			// will not fix itself on the next attempt.
			if !IsTransport(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		fixtures = result
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff

	notify := func(err error, next time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			slog.String("league", leagueCode),
			slog.String("next_backoff", next.String()),
			"error", err,
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx), notify)
	if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
			slog.String("league", leagueCode),
			"error", err,
		)
		return nil, err
	}
	return fixtures, nil
}
