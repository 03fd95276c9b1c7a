package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "debug msg")
	log.Info(ctx, "info msg")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, "debug msg")
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_Attrs(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelInfo)

	log.Info(context.Background(), "saved", "step", 3)
	require.Contains(t, buf.String(), "step=3")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelInfo)

	child := log.With("tenant", "acme")
	child.Info(context.Background(), "loaded")

	require.Contains(t, buf.String(), "tenant=acme")
	require.Contains(t, buf.String(), "loaded")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelWarn)

	log.Info(context.Background(), "dropped")
	require.Empty(t, buf.String())
}
