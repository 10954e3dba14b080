package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureLogs installs a JSON slog default writing into the returned buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestFromContext_NoRequestScope(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWithRequestID_AnnotatesLogs(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithRequestID(context.Background(), "req-1")
	FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}

func TestWithPlayer_ChainsOntoRequestLogger(t *testing.T) {
	buf := captureLogs(t)

	ctx := WithRequestID(context.Background(), "req-2")
	ctx = WithPlayer(ctx, 42)
	FromContext(ctx).Info("claimed")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-2"`)
	assert.Contains(t, out, `"tg_id":42`)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
