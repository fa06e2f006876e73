package countdown

import "errors"

var (
	// ErrStaleCountdown marks an observed countdown older than the staleness
	// threshold. It is logged and healed, never returned to API callers.
	ErrStaleCountdown = errors.New("stale countdown")

	// ErrCountdownActive is returned when a test countdown is requested while
	// another countdown runs.
	ErrCountdownActive = errors.New("countdown already active")
)
