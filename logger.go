package letterbox

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with letterbox-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRequestID adds a request_id field to the logger.
func (l *Logger) WithRequestID(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("request_id", id),
	}
}

// WithBoard adds a board field to the logger.
func (l *Logger) WithBoard(board string) *Logger {
	return &Logger{
		Logger: l.Logger.With("board", board),
	}
}

// WithWorker adds a worker index field to the logger.
func (l *Logger) WithWorker(worker int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", worker),
	}
}

// LogFilter logs a candidate filter pass.
func (l *Logger) LogFilter(ctx context.Context, board string, candidates int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"board", board,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"board", board,
			"candidates", candidates,
			"duration", duration,
		)
	}
}

// LogSolveStart logs the launch of a solve request.
func (l *Logger) LogSolveStart(ctx context.Context, id uint64, board string, workers, candidates int) {
	l.InfoContext(ctx, "solve started",
		"request_id", id,
		"board", board,
		"workers", workers,
		"candidates", candidates,
	)
}

// LogSolveComplete logs a solve request that ran to completion.
func (l *Logger) LogSolveComplete(ctx context.Context, id uint64, solutions int, duration time.Duration) {
	l.InfoContext(ctx, "solve completed",
		"request_id", id,
		"solutions", solutions,
		"duration", duration,
	)
}

// LogSuperseded logs a solve request displaced by a newer one.
func (l *Logger) LogSuperseded(ctx context.Context, oldID, newID uint64) {
	l.DebugContext(ctx, "solve superseded",
		"request_id", oldID,
		"superseded_by", newID,
	)
}

// LogWorkerDecodeError logs a worker that could not decode its
// candidate buffer.
func (l *Logger) LogWorkerDecodeError(ctx context.Context, id uint64, worker int, err error) {
	l.ErrorContext(ctx, "worker candidate decode failed",
		"request_id", id,
		"worker", worker,
		"error", err,
	)
}
