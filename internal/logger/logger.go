package logger

import (
	"AppTasks/internal/console"
	"AppTasks/internal/paths"
	"AppTasks/internal/version"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lmittmann/tint"
)

// Helper to resolve message from any type to string
func resolveMsg(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		var parts []string
		for _, item := range v {
			parts = append(parts, resolveMsg(item))
		}
		return strings.Join(parts, "\n")
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

func log(ctx context.Context, level slog.Level, msg any, args ...any) {
	logAt(ctx, time.Now(), level, msg, args...)
}

// Internal helper to log with a specific timestamp
func logAt(ctx context.Context, t time.Time, level slog.Level, msg any, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	msgStr := resolveMsg(msg)
	if len(args) > 0 && strings.Contains(msgStr, "%") {
		msgStr = fmt.Sprintf(msgStr, args...)
		args = nil
	}
	msgStr = console.Parse(msgStr)

	// Reset colors at the end of each line so they don't bleed into the next record
	reset := ""
	if strings.Contains(msgStr, "\033") {
		reset = console.CodeReset
	}

	// One record per line so every line gets its own timestamp and level
	for i, line := range strings.Split(msgStr, "\n") {
		r := slog.NewRecord(t, level, line+reset, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	// File level should be at least Info, or lower if Debug is requested
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

// levelLabel returns the fixed-width label for a level, colored when color is set.
func levelLabel(level slog.Level, color bool) string {
	var label, code string
	switch level {
	case LevelTrace:
		label, code = "[TRACE ]", console.CodeBlue
	case LevelDebug:
		label, code = "[DEBUG ]", console.CodeBlue
	case LevelInfo:
		label, code = "[INFO  ]", console.CodeBlue
	case LevelNotice:
		label, code = "[NOTICE]", console.CodeGreen
	case LevelWarn:
		label, code = "[WARN  ]", console.CodeYellow
	case LevelError:
		label, code = "[ERROR ]", console.CodeRed
	case LevelFatal:
		label, code = "[FATAL ]", console.CodeRedBg+console.CodeWhite
	default:
		return "[" + level.String() + "]"
	}
	if color {
		return code + label + console.CodeReset + " "
	}
	return label + " "
}

// NewHandler builds the console handler used for w.
func NewHandler(w io.Writer, color bool, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelLabel(level, color))
				}
			}
			if !color && a.Key == slog.MessageKey {
				a.Value = slog.StringValue(ansi.Strip(a.Value.String()))
			}
			return a
		},
	})
}

func NewLogger() *slog.Logger {
	wStderr := os.Stderr

	stat, _ := wStderr.Stat()
	isTTY := stat != nil && (stat.Mode()&os.ModeCharDevice) != 0

	handlers := []slog.Handler{NewHandler(wStderr, isTTY, LevelVar)}

	logFilePath := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err == nil {
		wFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFile = wFile
			handlers = append(handlers, NewHandler(wFile, false, FileLevelVar))
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// Cleanup closes the log file opened by NewLogger.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// Global helpers for custom levels that don't satisfy standard slog methods
func Trace(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg any, args ...any) {
	log(ctx, LevelError, msg, args...)
}

func getSystemInfo() []string {
	var info []string

	info = append(info, fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	info = append(info, "")

	executable, _ := os.Executable()
	info = append(info, fmt.Sprintf("Currently running as: %s (PID %d)", executable, os.Getpid()))
	info = append(info, "")

	info = append(info, fmt.Sprintf("ARCH:       %s", runtime.GOARCH))
	info = append(info, fmt.Sprintf("OS:         %s", runtime.GOOS))
	info = append(info, fmt.Sprintf("SCRIPTPATH: %s", paths.GetExecDirectory()))
	info = append(info, fmt.Sprintf("LOGFILE:    %s", paths.GetLogFilePath()))

	return info
}

// FatalWithStackSkip logs msg at FatalLevel with system information and a stack trace,
// dropping skip caller frames, then panics with FatalError.
func FatalWithStackSkip(ctx context.Context, skip int, msg any, args ...any) {
	now := time.Now()

	pc := make([]uintptr, 32)
	n := runtime.Callers(2+skip, pc)
	frames := runtime.CallersFrames(pc[:n])

	var infoLines []string
	for _, line := range getSystemInfo() {
		if line != "" {
			line = "  " + line
		}
		infoLines = append(infoLines, line)
	}

	var allFrames []runtime.Frame
	for {
		frame, more := frames.Next()
		allFrames = append(allFrames, frame)
		if !more {
			break
		}
	}

	wd, _ := os.Getwd()
	width := len(fmt.Sprintf("%d", len(allFrames)-1))

	// Main (last) first, the failing call last
	var traceLines []string
	for i := len(allFrames) - 1; i >= 0; i-- {
		frame := allFrames[i]
		if wd != "" {
			if rel, err := filepath.Rel(wd, frame.File); err == nil && !strings.HasPrefix(rel, "..") {
				frame.File = "./" + filepath.ToSlash(rel)
			}
		}
		traceLines = append(traceLines, fmt.Sprintf("  %*d: %s:%d (%s)", width, i, frame.File, frame.Line, filepath.Base(frame.Function)))
	}

	output := []any{
		"{{_TraceHeader_}}### BEGIN SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		infoLines,
		"",
		traceLines,
		"{{_TraceFooter_}}### END SYSTEM INFORMATION AND STACK TRACE ###{{|-|}}",
		"",
		msg,
	}

	logAt(ctx, now, LevelFatal, output, args...)

	panic(FatalError{})
}

// FatalNoTrace logs a message at FatalLevel without stack trace and panics with FatalError.
func FatalNoTrace(ctx context.Context, msg any, args ...any) {
	logAt(ctx, time.Now(), LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
// This allows the main run loop to recover and perform cleanup before exiting
type FatalError struct{}

func (FatalError) Error() string { return "fatal error" }
