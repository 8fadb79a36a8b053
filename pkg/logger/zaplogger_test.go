package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_InfoWritesFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf).WithEnv("test")

	l.Info("fetched bulletin", map[string]any{"base_time": "0500"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "fetched bulletin", entry["msg"])
	assert.Equal(t, "test-app", entry["app_name"])
	assert.Equal(t, "test", entry["app_zone"])
	assert.Equal(t, "0500", entry["base_time"])
	assert.Contains(t, entry["caller_file"], "zaplogger_test.go")
	assert.Contains(t, entry["caller_func"], "TestLogger_InfoWritesFieldsAndCaller")
	assert.NotEmpty(t, entry["timestamp"])
}

func TestLogger_ErrorCarriesErrorAndStack(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	l.Error(errors.New("portal unavailable"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "portal unavailable", entries[0]["error"])
	assert.NotEmpty(t, entries[0]["stack"])
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	require.NoError(t, l.SetLevel("warn"))
	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])

	assert.Error(t, l.SetLevel("loud"))
}

func TestLogger_MultipleWriters(t *testing.T) {
	var a, b bytes.Buffer
	l := NewZapLogger("test-app", &a, &b)

	l.Info("twice")

	assert.Contains(t, a.String(), "twice")
	assert.Contains(t, b.String(), "twice")
}
