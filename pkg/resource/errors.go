package resource

import (
	"errors"
	"fmt"
	"net/http"
)

// Error definitions for resource package.
var (
	ErrServerRequired = errors.New("server URL is required")
	ErrInvalidServer  = errors.New("invalid server URL")
	ErrRequestFailed  = errors.New("request failed")
	ErrNotFound       = errors.New("resource not found")
	ErrEmptyName      = errors.New("resource name cannot be empty")
	ErrInvalidName    = errors.New("invalid resource name")
)

// StatusError is a non-2xx answer of the API server, decoded from its
// Status body when there is one.
type StatusError struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s (%d %s): %s", ErrRequestFailed, e.Code, e.Reason, msg)
	}
	return fmt.Sprintf("%s (%d): %s", ErrRequestFailed, e.Code, msg)
}

// Is matches ErrRequestFailed for every status, and ErrNotFound for 404s.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	default:
		return false
	}
}
