package publisher

import (
	"context"
	"log/slog"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/logging"
)

// LogPublisher writes tracking output to the service log. It is the default
// sink when no delivery channel is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher constructs a log-backed publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishDiscovered(ctx context.Context, fixtures []domain.Fixture) error {
	_ = ctx
	for _, f := range fixtures {
		logging.Info(p.logger, "fixture discovered",
			logging.FieldMatchID, f.ID,
			logging.FieldLeague, f.LeagueCode,
			"home", f.Home,
			"away", f.Away,
			"local_time", f.LocalTime,
		)
	}
	return nil
}

func (p *LogPublisher) PublishResults(ctx context.Context, fixtures []domain.Fixture) error {
	_ = ctx
	for _, f := range fixtures {
		logging.Info(p.logger, "result published",
			logging.FieldMatchID, f.ID,
			logging.FieldLeague, f.LeagueCode,
			"home", f.Home,
			"away", f.Away,
			"home_score", f.Score.Home,
			"away_score", f.Score.Away,
		)
	}
	return nil
}

func (p *LogPublisher) PublishHeartbeat(ctx context.Context) error {
	_ = ctx
	logging.Info(p.logger, "heartbeat")
	return nil
}
