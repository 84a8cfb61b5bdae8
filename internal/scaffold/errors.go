package scaffold

import (
	"errors"
	"strings"
)

// Sentinel errors for known failure conditions.
var (
	// ErrNameInvalid indicates the project name is not a valid identifier.
	ErrNameInvalid = errors.New("invalid project name")

	// ErrNameReserved indicates the project name collides with a Python
	// keyword, dunder name, or standard library module.
	ErrNameReserved = errors.New("reserved project name")

	// ErrVersionInvalid indicates the Python version is not in X.Y form.
	ErrVersionInvalid = errors.New("invalid python version")

	// ErrDestinationExists indicates the destination directory already exists.
	ErrDestinationExists = errors.New("destination exists")

	// ErrDestinationNotEmpty indicates the current directory is not empty.
	ErrDestinationNotEmpty = errors.New("destination not empty")
)

// DetailError captures structured error information for user display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending path or value (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying sentinel error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}
