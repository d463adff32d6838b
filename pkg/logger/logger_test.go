package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	assert.False(t, DebugEnabled(""))
	assert.False(t, DebugEnabled("0"))
	assert.False(t, DebugEnabled("FALSE"))
	assert.True(t, DebugEnabled("1"))
	assert.True(t, DebugEnabled("yes"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestSetLevelFiltersOutput(t *testing.T) {
	prev := Level()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetLevel(prev)
		SetOutput(os.Stderr)
	})

	SetLevel(slog.LevelWarn)
	Info("hidden message")
	Warn("shown message", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "shown message")
	assert.Contains(t, out, "key=value")

	buf.Reset()
	SetLevel(slog.LevelDebug)
	Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
}
