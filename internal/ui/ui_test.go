package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	out := FormatError("unknown profile", "no profile named \"pyhton\"", "run he2plus search pyhton")
	assert.Contains(t, out, "Error: unknown profile")
	assert.Contains(t, out, "no profile named")
	assert.Contains(t, out, "Hint: run he2plus search pyhton")

	out = FormatError("failed", "", "")
	assert.NotContains(t, out, "Hint")
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer

	ProfileLine(&buf, "python", "Python Development", "CPython with pip")
	CategoryLine(&buf, "languages", 5)
	KeyValue(&buf, "ram", "4.0 GB")
	ValidationOK(&buf, "docker", "compatible")
	ValidationWarn(&buf, "High RAM requirement")
	ValidationErr(&buf, "Unknown profiles: x", "run he2plus list")

	out := buf.String()
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "- CPython with pip")
	assert.Contains(t, out, "languages")
	assert.Contains(t, out, "(5)")
	assert.Contains(t, out, "4.0 GB")
	assert.Contains(t, out, "High RAM requirement")
	assert.Contains(t, out, "Unknown profiles: x")
	assert.Contains(t, out, "Hint: run he2plus list")
}

func TestList(t *testing.T) {
	assert.Equal(t, "a, b", List([]string{"a", "b"}))
	assert.Contains(t, List(nil), "none")
}
