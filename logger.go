package ovc

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMethod adds a method field to the logger.
func (l *Logger) WithMethod(m Method) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", m.String()),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogCompress logs a compression operation.
func (l *Logger) LogCompress(ctx context.Context, method Method, dimension int, event Event, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compress failed",
			"method", method.String(),
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "compress completed",
			"method", method.String(),
			"dimension", dimension,
			"compressed_bytes", event.CompressedBytes,
			"energy_retained", event.EnergyRetained,
		)
	}
}

// LogDecompress logs a decompression operation.
func (l *Logger) LogDecompress(ctx context.Context, method Method, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decompress failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decompress completed",
			"method", method.String(),
			"dimension", dimension,
		)
	}
}

// LogBatchCompress logs a batch compression operation.
func (l *Logger) LogBatchCompress(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch compress completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch compress completed",
			"count", count,
		)
	}
}
