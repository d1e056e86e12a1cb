package providers

import (
	"errors"
	"fmt"
)

// ErrUpstreamUnavailable is returned when no upstream has been configured.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// UpstreamError captures a non-2xx response from the upstream API.
type UpstreamError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream GET %s returned status %d", e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// DecodeError captures an upstream body that could not be parsed as the expected JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode upstream GET %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
