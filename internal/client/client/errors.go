package client

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed        = errors.New("request failed")
	ErrTransportUnavailable = errors.New("server unavailable")
)

// RequestError reports a non-success HTTP status.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
