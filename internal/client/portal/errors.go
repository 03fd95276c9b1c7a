package portal

import "errors"

var (
	// ErrUnavailable wraps transport-level failures. Retries are manual:
	// the user re-runs the command, no automatic retry happens here.
	ErrUnavailable = errors.New("portal unavailable")

	// ErrUnauthorized means the bearer token was rejected.
	ErrUnauthorized = errors.New("unauthorized")
)
