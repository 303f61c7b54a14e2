package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), in)
	}
}

func TestLoggerNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "warn", Format: "json"}.New(&buf)

	logger.Info("dropped")
	logger.Warn("kept", slog.Int("status", 207))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.EqualValues(t, 207, line["status"])
}

func TestLoggerNewText(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "yaml"}.New(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
