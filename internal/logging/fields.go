package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldLeague     = "league"
	FieldMatchID    = "match_id"
	FieldDate       = "date"
	FieldCount      = "count"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)
