package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrInvalidPersona = errors.New("invalid persona")
	ErrMissingAPIKey  = errors.New("API key is not configured")
)

// UpstreamError is a non-2xx reply from a provider. The body is kept for
// diagnostics and must never be forwarded to the browser.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, response: %s", e.StatusCode, e.Body)
}

// DecodeError is a provider reply that could not be decoded into the
// provider's response envelope.
type DecodeError struct {
	Provider string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response data: %v", e.Provider, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
