package journal

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by storage when a record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports input that failed domain validation.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}
