package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrCycle    = "cycle"
)

// Cycle kinds recorded by the tracker.
const (
	CycleDiscovery = "discovery"
	CycleResolve   = "resolve"
)
