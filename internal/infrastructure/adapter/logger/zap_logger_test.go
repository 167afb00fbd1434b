package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/user-leveling/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewZapLogger(Options{Production: true, Level: "info", FilePath: path, MaxSizeMB: 1})

	log.Debug("hidden", nil)
	log.Info("User added", map[string]any{"userId": "1", "user_level": "BASIC"})
	log.With(map[string]any{"component": "mail"}).Warn("Failed to send upgrade notice", map[string]any{"to": "a@example.com"})
	_ = log.Flush()

	entries := readEntries(t, path)
	require.Len(t, entries, 2)

	assert.Equal(t, "User added", entries[0]["message"])
	assert.Equal(t, "info", entries[0]["severity"])
	assert.Equal(t, "1", entries[0]["userId"])
	assert.Equal(t, "BASIC", entries[0]["user_level"])
	assert.Contains(t, entries[0], "timestamp")

	assert.Equal(t, "warn", entries[1]["severity"])
	assert.Equal(t, "mail", entries[1]["component"])
	assert.Equal(t, "a@example.com", entries[1]["to"])
}

func TestZapLogger_FieldNamedLevelKeepsSeverity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewZapLogger(Options{Production: true, Level: "info", FilePath: path})

	log.Error("Stored user has an invalid level", map[string]any{"level": 7})
	_ = log.Flush()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), `"severity":`))
	assert.Equal(t, 1, strings.Count(string(raw), `"level":`))

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["severity"])
	assert.Equal(t, 7.0, entries[0]["level"])
}

func TestZapLogger_Level(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := NewZapLogger(Options{Production: true, Level: "warn", FilePath: path})
	child := log.With(map[string]any{"component": "db"})

	assert.Equal(t, core.LogLevelWarn, log.GetLevel())

	child.Info("dropped", nil)
	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, child.GetLevel())
	child.Debug("kept", nil)
	_ = log.Flush()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
	assert.Equal(t, "db", entries[0]["component"])
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("debug"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warn"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("verbose"))
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NotNil(t, log.With(map[string]any{"k": "v"}))
	assert.NoError(t, log.Flush())
}
