package yahoo

import "fmt"

// StatusError reports a failed provider response, keeping the HTTP status
// and raw body so the user can diagnose the exact provider complaint.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: provider returned HTTP %d: %s", e.Op, e.StatusCode, e.Body)
}
