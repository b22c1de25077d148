package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "playground"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"card": "aurora", "glow_mode": "border"})
	log.Info("tracker mounted")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "tracker mounted", entry["message"])
	require.Equal(t, "aurora", entry["card"])
	require.Equal(t, "border", entry["glow_mode"])
	require.Equal(t, "playground", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse log level")
}

func TestLoggerWarnAndError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("field", "cards[0].glow_color").Warn("falling back to default")
	log.Error(errors.New("boom"), "render failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn, failure logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	require.Equal(t, "warn", warn["level"])
	require.Equal(t, "cards[0].glow_color", warn["field"])
	require.Equal(t, "render failed", failure["message"])
	require.Equal(t, "boom", failure["error"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	nilLog.Info("ignored")
	nilLog.Error(errors.New("ignored"), "ignored")
	require.Nil(t, nilLog.With("k", "v"))

	Nop().Warn("ignored")
}
