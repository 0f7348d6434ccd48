package logx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBuffered(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))), &buf
}

func TestLogLoad(t *testing.T) {
	l, buf := newBuffered(slog.LevelDebug)

	l.WithPath("data.txt").LogLoad(10, 3, nil)
	assert.Contains(t, buf.String(), "load completed")
	assert.Contains(t, buf.String(), "path=data.txt")
	assert.Contains(t, buf.String(), "short=true")

	buf.Reset()
	l.LogLoad(10, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogStoreAndSuppressed(t *testing.T) {
	l, buf := newBuffered(slog.LevelWarn)

	l.LogStore(2, nil)
	assert.Empty(t, buf.String(), "debug is below warn")

	l.LogSuppressed("write", errors.New("disk full"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "op=write")
}

func TestNoop(t *testing.T) {
	l := New(nil)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
