package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/localnerve/roulette-api/internal/config"
	"github.com/localnerve/roulette-api/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("chatty"))
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept", slog.Int("count", 2))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "roulette-api", entry["service"])
	assert.EqualValues(t, 2, entry["count"])
}

func TestTextLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&config.Config{LogLevel: "error", LogFormat: "text", Debug: true}, &buf)

	logger.Debug("query")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=query")
}
