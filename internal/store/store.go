package store

import (
	"context"

	"match-tracker-service/internal/domain"
)

// TrackedStore is the narrow CRUD surface the tracking engine reads and
// mutates. Implementations must make InsertIfAbsent and Delete idempotent:
// the daily discovery job can run more than once for the same window, and
// resolution cycles may overlap.
type TrackedStore interface {
	// List returns a snapshot of every tracked fixture.
	List(ctx context.Context) ([]domain.TrackedFixture, error)
	// InsertIfAbsent persists a newly discovered fixture. Inserting an
	// already-tracked match ID is a no-op, not an error.
	InsertIfAbsent(ctx context.Context, fixture domain.TrackedFixture) error
	// Delete removes a fixture from tracking. Deleting an unknown match ID
	// is a no-op.
	Delete(ctx context.Context, matchID string) error
}
