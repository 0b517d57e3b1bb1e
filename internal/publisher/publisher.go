package publisher

import (
	"context"

	"match-tracker-service/internal/domain"
)

// Publisher is the delivery sink for tracking output. Implementations are
// side-effect only: a publish failure must never roll back a store mutation
// that already happened, and callers rely on the next cycle rather than
// in-process retries.
type Publisher interface {
	// PublishDiscovered announces the fixtures entering today's window.
	PublishDiscovered(ctx context.Context, fixtures []domain.Fixture) error
	// PublishResults emits finished fixtures exactly once per resolution.
	PublishResults(ctx context.Context, fixtures []domain.Fixture) error
	// PublishHeartbeat signals liveness on the delivery channel.
	PublishHeartbeat(ctx context.Context) error
}
