package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
)

var log *slog.Logger

// Init installs the global logger.
// env: "development" gives colored text output, anything else JSON.
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

func InitWithWriter(env string, w io.Writer) {
	var handler slog.Handler

	if env == "development" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initializing a development one if
// Init was never called.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

// logAt writes a record attributed to the caller of the exported helper,
// so AddSource points at application code instead of this package.
func logAt(ctx context.Context, l *slog.Logger, level slog.Level, msg string, args ...any) {
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, logAt, helper
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func Info(msg string, args ...any) {
	logAt(context.Background(), GetLogger(), slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	logAt(context.Background(), GetLogger(), slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	logAt(context.Background(), GetLogger(), slog.LevelError, msg, args...)
}
