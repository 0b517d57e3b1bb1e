package config

const (
	envStoreBackend = "STORE"
	envDatabaseURL  = "DATABASE_URL"

	defaultStoreBackend = "memory"
)

// StoreConfig selects the tracked-fixture store backend.
type StoreConfig struct {
	Backend     string // "memory" or "postgres"
	DatabaseURL string
}

func loadStore() StoreConfig {
	return StoreConfig{
		Backend:     envOrDefault(envStoreBackend, defaultStoreBackend),
		DatabaseURL: envOrDefault(envDatabaseURL, ""),
	}
}
