package dfalog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dfakit/pkg/dfalog"
)

func TestNew_Defaults(t *testing.T) {
	buf := &bytes.Buffer{}
	log := dfalog.New(dfalog.WithOutput(buf))
	require.NotNil(t, log)

	log.Debug("hidden")
	log.Info("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "shown", entry["msg"])
}

func TestNew_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := dfalog.New(
		dfalog.WithFormat(dfalog.FormatText),
		dfalog.WithOutput(buf),
	)

	log.Info("msg")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "msg=msg")
}

func TestNew_WithLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := dfalog.New(
		dfalog.WithLevel(slog.LevelDebug),
		dfalog.WithOutput(buf),
	)

	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_WithAttr(t *testing.T) {
	buf := &bytes.Buffer{}
	log := dfalog.New(
		dfalog.WithOutput(buf),
		dfalog.WithAttr(slog.String("component", "dfa")),
	)

	log.Info("msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dfa", entry["component"])
}

func TestWithFormat_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		dfalog.New(dfalog.WithFormat("xml"))
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DFAKIT_LOG_LEVEL", "debug")
	t.Setenv("DFAKIT_LOG_FORMAT", "text")

	buf := &bytes.Buffer{}
	log, err := dfalog.NewFromEnv(dfalog.WithOutput(buf))
	require.NoError(t, err)

	log.Debug("msg")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNewFromEnv_Defaults(t *testing.T) {
	// Register cleanup via t.Setenv, then clear so the defaults apply.
	t.Setenv("DFAKIT_LOG_LEVEL", "")
	t.Setenv("DFAKIT_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("DFAKIT_LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("DFAKIT_LOG_FORMAT"))

	buf := &bytes.Buffer{}
	log, err := dfalog.NewFromEnv(dfalog.WithOutput(buf))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
}

func TestNewFromEnv_InvalidLevel(t *testing.T) {
	t.Setenv("DFAKIT_LOG_LEVEL", "verbose")

	_, err := dfalog.NewFromEnv()
	assert.ErrorIs(t, err, dfalog.ErrParsingConfig)
}

func TestNewFromEnv_InvalidFormat(t *testing.T) {
	t.Setenv("DFAKIT_LOG_FORMAT", "xml")

	_, err := dfalog.NewFromEnv()
	assert.ErrorIs(t, err, dfalog.ErrInvalidFormat)
}
