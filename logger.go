package bitvec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithKey adds a blob key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithBits adds a region length field to the logger.
func (l *Logger) WithBits(bits uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, key string, bits uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"key", key,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot "+op+" completed",
		"key", key,
		"bits", bits,
	)
}

// LogParallel logs a chunked bulk operation.
func (l *Logger) LogParallel(ctx context.Context, op string, bits uint, chunks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel "+op+" failed",
			"bits", bits,
			"chunks", chunks,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "parallel "+op+" completed",
		"bits", bits,
		"chunks", chunks,
	)
}
