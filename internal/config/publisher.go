package config

import "time"

const (
	envPublisherBackend = "PUBLISHER"
	envTelegramToken    = "TELEGRAM_BOT_TOKEN"
	envTelegramChatID   = "TELEGRAM_CHAT_ID"
	envTelegramTimeout  = "TELEGRAM_TIMEOUT"

	defaultPublisherBackend = "log"
	defaultTelegramTimeout  = 10 * time.Second
)

// PublisherConfig selects the delivery channel for discovered fixtures and
// finished results.
type PublisherConfig struct {
	Backend         string // "log" or "telegram"
	TelegramToken   string
	TelegramChatID  string
	TelegramTimeout time.Duration
}

func loadPublisher() PublisherConfig {
	return PublisherConfig{
		Backend:         envOrDefault(envPublisherBackend, defaultPublisherBackend),
		TelegramToken:   envOrDefault(envTelegramToken, ""),
		TelegramChatID:  envOrDefault(envTelegramChatID, ""),
		TelegramTimeout: durationEnvOrDefault(envTelegramTimeout, defaultTelegramTimeout),
	}
}
