package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	// default logger instance
	defaultLogger *slog.Logger
)

func init() {
	Setup(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
}

// (re)configures the default logger. production gets JSON on stdout at INFO,
// everything else human-readable text on stderr at DEBUG. level overrides
// the default threshold when set.
func Setup(environment, level string) {
	defaultLogger = slog.New(newHandler(environment, level, nil))
}

func newHandler(environment, level string, w io.Writer) slog.Handler {
	if environment == "production" {
		if w == nil {
			w = os.Stdout
		}

		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level, slog.LevelInfo),
		})
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level, slog.LevelDebug),
	})
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the logger stored in ctx, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}

// logs one line per request, replacing gin's default logger
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			defaultLogger.Error("request", args...)
		case status >= 400:
			defaultLogger.Warn("request", args...)
		default:
			defaultLogger.Debug("request", args...)
		}
	}
}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
