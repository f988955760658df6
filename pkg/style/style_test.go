package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledReturnsPlainText(t *testing.T) {
	t.Parallel()

	s := NewWithEnabled(&bytes.Buffer{}, false)
	assert.False(t, s.Enabled())
	assert.Equal(t, "DESCRIPTION", s.Header("DESCRIPTION"))
	assert.Equal(t, "--name", s.Info("--name"))
	assert.Equal(t, "(string)", s.Muted("(string)"))
}

func TestEnabledReturnsStyledText(t *testing.T) {
	t.Parallel()

	s := NewWithEnabled(&bytes.Buffer{}, true)
	assert.True(t, s.Enabled())

	got := s.Header("DESCRIPTION")
	assert.Contains(t, got, "DESCRIPTION")
	assert.NotEqual(t, "DESCRIPTION", got)

	got = s.Info("--name")
	assert.Contains(t, got, "--name")
	assert.NotEqual(t, "--name", got)
}

func TestNonTerminalDisablesStyling(t *testing.T) {
	t.Parallel()

	assert.False(t, New(&bytes.Buffer{}).Enabled())
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, New(&bytes.Buffer{}).Enabled())
}

func TestNilStyler(t *testing.T) {
	t.Parallel()

	var s *Styler
	assert.False(t, s.Enabled())
	assert.Equal(t, "text", s.Header("text"))
}
