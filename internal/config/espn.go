package config

import "time"

const (
	envEspnBaseURL = "ESPN_BASE_URL"
	envEspnTimeout = "ESPN_TIMEOUT"

	defaultEspnBaseURL = "https://site.api.espn.com/apis/site/v2/sports/soccer"
	defaultEspnTimeout = 10 * time.Second
)

// ESPNConfig controls how we talk to the ESPN scoreboard feed.
type ESPNConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL: envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		Timeout: durationEnvOrDefault(envEspnTimeout, defaultEspnTimeout),
	}
}
