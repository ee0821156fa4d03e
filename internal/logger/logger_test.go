package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs installs a logger writing to a buffer and restores the default afterwards
func captureLogs(t *testing.T, config Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	InitLoggerWithWriter(config, &buf)
	return &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestJSONLogging(t *testing.T) {
	buf := captureLogs(t, NewConfig("info", "JSON", "alchemy", "1.0.0", "test", false))

	slog.Info("brew completed", "potions", 3, "mode", "ingredients")

	entry := decodeEntry(t, buf)
	assert.Equal(t, "alchemy", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "brew completed", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(3), entry["potions"])
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t, NewConfig("warn", "text", "svc", "v", "test", false))

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	t.Run("request and catalog attributes", func(t *testing.T) {
		buf := captureLogs(t, NewConfig("info", "json", "svc", "v", "test", false))

		ctx := WithCatalogVersion(WithRequestID(context.Background(), "abc"), "9f2c41d07e1b")
		FromContext(ctx).Info("hello")

		entry := decodeEntry(t, buf)
		assert.Equal(t, "abc", entry[AttrKeyRequestID])
		assert.Equal(t, "9f2c41d07e1b", entry[AttrKeyCatalogVersion])
	})

	t.Run("bare context adds nothing", func(t *testing.T) {
		buf := captureLogs(t, NewConfig("info", "json", "svc", "v", "test", false))

		FromContext(context.Background()).Info("hello")

		entry := decodeEntry(t, buf)
		assert.NotContains(t, entry, AttrKeyRequestID)
		assert.NotContains(t, entry, AttrKeyCatalogVersion)
	})
}

func TestRequestIDFromContext(t *testing.T) {
	id, ok := RequestIDFromContext(WithRequestID(context.Background(), "req-123"))
	assert.True(t, ok)
	assert.Equal(t, "req-123", id)

	_, ok = RequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = RequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestSourceForEnvironment(t *testing.T) {
	assert.True(t, SourceForEnvironment("dev"))
	assert.True(t, SourceForEnvironment("Development"))
	assert.False(t, SourceForEnvironment("staging"))
	assert.False(t, SourceForEnvironment("prod"))
}
