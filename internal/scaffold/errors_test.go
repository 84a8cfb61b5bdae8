package scaffold

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailErrorMessage(t *testing.T) {
	err := &DetailError{
		Type:    "invalid name",
		Message: "name must be a valid Python identifier",
	}
	assert.Equal(t, "invalid name: name must be a valid Python identifier", err.Error())
}

func TestDetailErrorWithLocationAndHint(t *testing.T) {
	err := &DetailError{
		Type:     "destination exists",
		Message:  `directory "my_app" already exists`,
		Location: "/tmp/my_app",
		Hint:     "Remove it or choose a different name.",
	}

	msg := err.Error()
	assert.Contains(t, msg, "(/tmp/my_app)")
	assert.Contains(t, msg, "Hint: Remove it")
}

func TestDetailErrorUnwrap(t *testing.T) {
	err := &DetailError{
		Type:    "invalid name",
		Message: "bad",
		Cause:   ErrNameInvalid,
	}

	assert.ErrorIs(t, err, ErrNameInvalid)

	wrapped := fmt.Errorf("creating project: %w", err)
	assert.ErrorIs(t, wrapped, ErrNameInvalid)

	var detail *DetailError
	assert.True(t, errors.As(wrapped, &detail))
	assert.Equal(t, "invalid name", detail.Type)
}
