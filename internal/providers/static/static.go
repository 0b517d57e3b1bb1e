package static

import (
	"context"
	"time"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/timeutil"
)

// Provider returns a deterministic set of fixtures useful for local runs and
// wiring tests without hitting the real feed.
type Provider struct {
	now func() time.Time
}

// New creates a static provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchFixtures returns two example fixtures kicking off shortly after the
// requested (or current) date.
func (p *Provider) FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error) {
	_ = ctx

	start := p.now().UTC().Truncate(time.Hour)
	if date != "" {
		if parsed, err := time.Parse(timeutil.QueryDateLayout, date); err == nil {
			start = parsed.UTC()
		}
	}

	first := start.Add(2 * time.Hour)
	second := start.Add(4 * time.Hour)

	return []domain.Fixture{
		{
			ID:         "static-1",
			League:     "Static League",
			LeagueCode: leagueCode,
			Home:       "Rovers",
			Away:       "Wanderers",
			Kickoff:    first,
			LocalTime:  first.Format(timeutil.ClockLayout),
			UTCTime:    first.Format(timeutil.ClockLayout),
			Status:     domain.StatusScheduled,
		},
		{
			ID:         "static-2",
			League:     "Static League",
			LeagueCode: leagueCode,
			Home:       "Athletic",
			Away:       "United",
			Kickoff:    second,
			LocalTime:  second.Format(timeutil.ClockLayout),
			UTCTime:    second.Format(timeutil.ClockLayout),
			Status:     domain.StatusScheduled,
		},
	}, nil
}
