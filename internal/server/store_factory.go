package server

import (
	"context"
	"fmt"
	"log/slog"

	"match-tracker-service/internal/config"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/store"
	"match-tracker-service/internal/store/postgres"
)

// buildStore selects the tracked-fixture store backend. Postgres requires a
// DSN; anything else falls back to the in-memory store, which loses state on
// restart but keeps the engine correct thanks to idempotent inserts.
func buildStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (store.TrackedStore, func() error, error) {
	switch cfg.Backend {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, fmt.Errorf("postgres store requires DATABASE_URL")
		}
		pg, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		logging.Info(logger, "using postgres tracked-fixture store")
		return pg, pg.Close, nil
	default:
		logging.Info(logger, "using in-memory tracked-fixture store")
		return store.NewMemoryStore(), nil, nil
	}
}
