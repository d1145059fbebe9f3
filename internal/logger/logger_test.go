package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_ProductionIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler("production", "", &buf))

	log.Debug("hidden")
	log.Info("shown", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewHandler_DevelopmentIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler("development", "", &buf))

	log.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewHandler_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler("development", "warn", &buf))

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, parseLevel(" error ", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense", slog.LevelInfo))
}

func TestContextLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithContext(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
	assert.Same(t, Default(), FromContext(context.Background()))
}
