package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adexdump/internal/config"
)

func newBufferLogger(t *testing.T, cfg config.LoggingConfig, verbose bool) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := NewWithSink(cfg, verbose, zapcore.AddSync(&buf))
	require.NoError(t, err)
	return l, &buf
}

func TestNew_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(t, config.LoggingConfig{Level: "warn", Format: "console"}, false)

	l.Get(CategoryLoader).Info("hidden")
	l.Get(CategoryLoader).Warn("shown")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "loader")
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	l, buf := newBufferLogger(t, config.LoggingConfig{Level: "error", Format: "console"}, true)

	l.Get(CategoryBoot).Debug("debug entry")
	assert.Contains(t, buf.String(), "debug entry")
}

func TestNew_JSONFormat(t *testing.T) {
	l, buf := newBufferLogger(t, config.LoggingConfig{Level: "info", Format: "json"}, false)

	l.With(zap.String("run_id", "abc")).Get(CategoryFilter).Info("filtered", zap.Int("findings", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "filtered", entry["msg"])
	assert.Equal(t, "filter", entry["logger"])
	assert.Equal(t, "abc", entry["run_id"])
	assert.Equal(t, float64(3), entry["findings"])
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", Format: "console"}, false)
	assert.Error(t, err)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"}, false)
	assert.Error(t, err)
}

func TestGet_DisabledCategory(t *testing.T) {
	cfg := config.LoggingConfig{
		Level:      "debug",
		Format:     "console",
		Categories: map[string]bool{string(CategoryRender): false},
	}
	l, buf := newBufferLogger(t, cfg, false)

	l.Get(CategoryRender).Error("render entry")
	l.Get(CategoryLoader).Info("loader entry")

	out := buf.String()
	assert.NotContains(t, out, "render entry")
	assert.Contains(t, out, "loader entry")
}

func TestTimer(t *testing.T) {
	l, buf := newBufferLogger(t, config.LoggingConfig{Level: "debug", Format: "console"}, false)

	timer := l.StartTimer(CategoryLoader, "load snapshot")
	elapsed := timer.Stop(zap.String("path", "in.json"))

	assert.GreaterOrEqual(t, int64(elapsed), int64(0))
	line := buf.String()
	assert.True(t, strings.Contains(line, "load snapshot completed"), line)
	assert.Contains(t, line, "in.json")
}
