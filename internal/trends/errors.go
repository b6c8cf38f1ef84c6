package trends

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no trends API base URL is set. It is
// reported before any network I/O is attempted.
var ErrNotConfigured = errors.New("trends API base URL is not configured")

// StatusError is returned for non-2xx responses. Message carries the
// server-supplied error text when the body held one, so callers can show
// it to the user verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// SchemaError is returned when a 2xx response body does not decode as a
// JSON array of trend items.
type SchemaError struct {
	Message string
	cause   error
}

func (e *SchemaError) Error() string {
	return e.Message
}

func (e *SchemaError) Unwrap() error {
	return e.cause
}

// Poll cycle outcome labels used by logs and metrics.
const (
	OutcomeSuccess   = "success"
	OutcomeConfig    = "config"
	OutcomeTransport = "transport"
	OutcomeSchema    = "schema"
)

// Classify maps a fetch error onto its outcome label. Missing configuration
// and malformed payloads get their own labels; every other failure, from
// DNS to a non-2xx status, counts as transport.
func Classify(err error) string {
	var schemaErr *SchemaError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrNotConfigured):
		return OutcomeConfig
	case errors.As(err, &schemaErr):
		return OutcomeSchema
	default:
		return OutcomeTransport
	}
}

// newStatusError prefers the server's own error text over a generic
// status message.
func newStatusError(code int, body []byte) *StatusError {
	if msg := serverErrorText(body); msg != "" {
		return &StatusError{Code: code, Message: msg}
	}
	return &StatusError{Code: code, Message: fmt.Sprintf("trending request failed with status %d", code)}
}
