package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: "warn", Format: "json"})

	log.Info("dropped")
	log.Warn("kept", "intent", "FeedsIntent")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "FeedsIntent", entry["intent"])
}

func TestNewTextWithoutColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})

	log.Debug("dropped")
	log.Error("feed failed", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "feed failed")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "\x1b[")
}
