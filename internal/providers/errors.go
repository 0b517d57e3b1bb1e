package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable signals a provider that is not wired or was shut down.
var ErrProviderUnavailable = errors.New("provider unavailable")

// TransportError marks a whole-request upstream failure (network error or
// non-2xx response). It lets callers distinguish "the feed is unreachable"
// from "the feed answered with no fixtures", which must be handled
// differently during lifecycle checks.
type TransportError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: upstream status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
