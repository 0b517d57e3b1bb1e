package config

import "time"

// Config holds runtime configuration for the service. It is built once at
// startup and passed by value; components never read the environment
// themselves.
type Config struct {
	Port string

	// Leagues are the upstream competition codes to discover and track.
	Leagues []string

	// Timezone anchors the publishing window and local display times.
	Timezone         string
	WindowAnchorHour int

	ResolveInterval   time.Duration
	HeartbeatInterval time.Duration

	// GracePeriod is how long after kickoff a fixture is left alone before
	// the postponement check starts; ResultDelay is how long before the
	// final-result check starts.
	GracePeriod time.Duration
	ResultDelay time.Duration

	Provider  string
	ESPN      ESPNConfig
	Store     StoreConfig
	Publisher PublisherConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:              envOrDefault(envPort, defaultPort),
		Leagues:           listEnvOrDefault(envLeagues, defaultLeagues),
		Timezone:          envOrDefault(envTimezone, defaultTimezone),
		WindowAnchorHour:  intEnvOrDefault(envWindowAnchorHour, defaultWindowAnchorHour),
		ResolveInterval:   durationEnvOrDefault(envResolveInterval, defaultResolveInterval),
		HeartbeatInterval: durationEnvOrDefault(envHeartbeatInterval, defaultHeartbeatInterval),
		GracePeriod:       durationEnvOrDefault(envGracePeriod, defaultGracePeriod),
		ResultDelay:       durationEnvOrDefault(envResultDelay, defaultResultDelay),
		Provider:          envOrDefault(envProvider, defaultProvider),
		ESPN:              loadESPN(),
		Store:             loadStore(),
		Publisher:         loadPublisher(),
		Metrics:           loadMetrics(),
	}
}
