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

func TestFromContextAddsKnownKeys(t *testing.T) {
	var buf bytes.Buffer
	prev := defaultLogger
	defaultLogger = New("debug", "json", &buf)
	t.Cleanup(func() { defaultLogger = prev })

	ctx := WithContext(context.Background(), RequestIDKey, "req-1")
	ctx = WithContext(ctx, WorkflowKey, "bio_generate")
	Info(ctx, "bios generated", "count", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "bios generated", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "bio_generate", line["workflow"])
	assert.EqualValues(t, 3, line["count"])
	assert.NotContains(t, line, "trace_id")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
