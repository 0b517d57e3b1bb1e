package server

import (
	"log/slog"

	"match-tracker-service/internal/config"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/publisher"
)

// buildPublisher selects the delivery channel. Telegram needs credentials; a
// misconfigured backend degrades to log output rather than failing startup.
func buildPublisher(cfg config.PublisherConfig, logger *slog.Logger) publisher.Publisher {
	if cfg.Backend == "telegram" {
		if cfg.TelegramToken == "" || cfg.TelegramChatID == "" {
			logging.Warn(logger, "telegram publisher selected without credentials, falling back to log output")
			return publisher.NewLogPublisher(logger)
		}
		logging.Info(logger, "using telegram publisher")
		return publisher.NewTelegramPublisher(publisher.TelegramConfig{
			Token:   cfg.TelegramToken,
			ChatID:  cfg.TelegramChatID,
			Timeout: cfg.TelegramTimeout,
		})
	}
	return publisher.NewLogPublisher(logger)
}
