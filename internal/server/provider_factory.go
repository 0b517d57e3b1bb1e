package server

import (
	"log/slog"
	"time"

	"match-tracker-service/internal/config"
	"match-tracker-service/internal/metrics"
	"match-tracker-service/internal/providers"
	"match-tracker-service/internal/providers/espn"
	"match-tracker-service/internal/providers/static"
)

// providerFactory assembles the provider with shared wrappers (rate limit +
// retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config, loc *time.Location) providers.FixtureProvider {
	base, name := selectProvider(cfg, loc, f.logger)
	// One upstream call per second at most; discovery and resolution cycles
	// fan out across leagues and must not hammer the feed.
	limited := providers.NewRateLimitedProvider(base, time.Second, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, 0, 0)
}

func selectProvider(cfg config.Config, loc *time.Location, logger *slog.Logger) (providers.FixtureProvider, string) {
	switch cfg.Provider {
	case "static":
		return static.New(), "static"
	default:
		client := espn.NewClient(espn.Config{
			BaseURL:  cfg.ESPN.BaseURL,
			Timeout:  cfg.ESPN.Timeout,
			Location: loc,
			Logger:   logger,
		})
		return client, "espn"
	}
}
