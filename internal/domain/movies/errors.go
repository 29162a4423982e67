package movies

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the target id (or slug) has no matching record.
	ErrNotFound = errors.New("movie not found")

	// ErrStoreFailed means a write was rolled back by the repository.
	// Storage detail never leaves the repository boundary.
	ErrStoreFailed = errors.New("movie store write failed")
)

// Violation is a single business-rule failure on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in one pass, so callers
// see all of them at once instead of the first.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}
