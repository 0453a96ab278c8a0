package api

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// StatusError is a non-2xx response with a structured body; Message carries
// the server's own text so callers can show it verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}
