package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	League     string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError reports a non-success HTTP status from the upstream.
type StatusError struct {
	Provider   string
	League     string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s: unexpected status %d", e.Provider, e.League, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: unexpected status %d: %s", e.Provider, e.League, e.StatusCode, e.Message)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// DecodeError reports an upstream body that is not JSON or does not have
// the expected shape.
type DecodeError struct {
	Provider string
	League   string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s: malformed payload: %v", e.Provider, e.League, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var dErr *DecodeError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}
