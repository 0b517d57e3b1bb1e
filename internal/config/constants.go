package config

import "time"

const (
	envPort              = "PORT"
	envLeagues           = "LEAGUES"
	envTimezone          = "TIMEZONE"
	envWindowAnchorHour  = "WINDOW_ANCHOR_HOUR"
	envResolveInterval   = "RESOLVE_INTERVAL"
	envHeartbeatInterval = "HEARTBEAT_INTERVAL"
	envGracePeriod       = "GRACE_PERIOD"
	envResultDelay       = "RESULT_DELAY"
	envProvider          = "PROVIDER"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort             = "4000"
	defaultTimezone         = "Asia/Kolkata"
	defaultWindowAnchorHour = 22
	// Resolution cadence bounds how stale a pending result can get; the
	// heartbeat keeps the delivery channel warm between cycles.
	defaultResolveInterval   = 15 * time.Minute
	defaultHeartbeatInterval = 4 * time.Minute
	// A fixture more than 15 minutes past kickoff but still "scheduled"
	// upstream is treated as postponed; 110 minutes approximates a full
	// match with half-time and stoppage.
	defaultGracePeriod = 15 * time.Minute
	defaultResultDelay = 110 * time.Minute
	defaultProvider    = "espn"
	defaultMetricsPort = "9090"
)

var defaultLeagues = []string{"eng.1"}
