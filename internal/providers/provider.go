package providers

import (
	"context"

	"match-tracker-service/internal/domain"
)

// FixtureProvider defines how upstream scoreboard data is fetched and
// normalized. The date parameter, when provided, is a YYYYMMDD string
// selecting which day's scoreboard to fetch; an empty date means "today" as
// the upstream defines it. Implementations return deduplicated fixtures and
// must fail the whole call only on transport-level problems; individual
// malformed events are skipped.
type FixtureProvider interface {
	FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error)
}
