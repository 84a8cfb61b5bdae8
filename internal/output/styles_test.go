package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	assert.Contains(t, YesNo(true), "yes")
	assert.Contains(t, YesNo(false), "no")
}

func TestFormatCheckmark(t *testing.T) {
	got := FormatCheckmark("done")
	assert.Contains(t, got, "✔")
	assert.Contains(t, got, "done")
}

func TestFormatCross(t *testing.T) {
	got := FormatCross("failed")
	assert.Contains(t, got, "✘")
	assert.Contains(t, got, "failed")
}
