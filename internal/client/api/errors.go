package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures (DNS, connection refused,
	// timeouts). Callers use it to decide whether the mock fallback applies.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired is returned after a 401 response has cleared the
	// stored credentials.
	ErrSessionExpired = errors.New("session expired")
)

// APIError carries the numeric status and the server-provided message of a
// non-2xx response other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}
