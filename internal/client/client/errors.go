package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("malformed response")
	ErrInvalidBaseURL   = errors.New("invalid base url")
)

// StatusError carries the HTTP status of a non-2xx response.
// It matches ErrUnexpectedStatus under errors.Is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
