package shopping

import "fmt"

// StaleVersionError rejects a selection update that raced with a newer
// one. The host retries with a fresh snapshot; last request wins.
type StaleVersionError struct {
	Expected int
	Got      int
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("stale session version %d, current is %d", e.Got, e.Expected)
}

// SessionNotFoundError reports an unknown or expired session id. It is
// distinct from store failures so the facade can answer 404 instead of
// blaming the caller for an infrastructure problem.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("shopping session %s not found or expired", e.SessionID)
}
