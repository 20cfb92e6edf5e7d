package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := slog.Default()
	slog.SetDefault(slog.New(NewHandler(&buf, false, level)))
	t.Cleanup(func() { slog.SetDefault(saved) })
	return &buf
}

func TestLevelsAndFormatting(t *testing.T) {
	buf := captureDefault(t, LevelInfo)
	ctx := context.Background()

	Debug(ctx, "hidden")
	Info(ctx, "Saved %d lines to '{{_File_}}%s{{|-|}}'", 3, ".env")
	Notice(ctx, "first\nsecond")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO  ]")
	assert.Contains(t, out, "Saved 3 lines to '.env'")
	assert.Equal(t, 2, strings.Count(out, "[NOTICE]"))
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestFatalNoTracePanicsWithFatalError(t *testing.T) {
	buf := captureDefault(t, LevelTrace)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(FatalError)
		assert.True(t, ok, "expected FatalError, got %T", r)
		assert.Contains(t, buf.String(), "[FATAL ]")
		assert.Contains(t, buf.String(), "template missing")
	}()
	FatalNoTrace(context.Background(), "template %s", "missing")
}

func TestFanoutHandler(t *testing.T) {
	var a, b bytes.Buffer
	h := &FanoutHandler{handlers: []slog.Handler{
		NewHandler(&a, false, LevelNotice),
		NewHandler(&b, false, LevelDebug),
	}}
	l := slog.New(h)

	l.Debug("debug only")
	l.Warn("both")

	assert.NotContains(t, a.String(), "debug only")
	assert.Contains(t, b.String(), "debug only")
	assert.Equal(t, 1, strings.Count(a.String(), "both"))
	assert.Equal(t, 1, strings.Count(b.String(), "both"))
}

func TestPlainHandlerStripsColors(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, false, LevelNotice))

	l.Info("\033[1m\033[36mplain\033[0m text")

	assert.NotContains(t, buf.String(), "\033")
	assert.Contains(t, buf.String(), "plain text")
}

func TestRecoverReportsPanicAsFatal(t *testing.T) {
	buf := captureDefault(t, LevelTrace)

	defer func() {
		r := recover()
		_, ok := r.(FatalError)
		assert.True(t, ok, "expected FatalError, got %T", r)
		assert.Contains(t, buf.String(), "BEGIN SYSTEM INFORMATION AND STACK TRACE")
		assert.Contains(t, buf.String(), "panic: boom")
	}()

	func() {
		defer Recover(context.Background())
		panic("boom")
	}()
}
