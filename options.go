package letterbox

import (
	"log/slog"
	"runtime"
)

// DefaultWorkers returns the default solve parallelism.
func DefaultWorkers() int {
	return min(16, runtime.NumCPU())
}

type options struct {
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithWorkers configures how many workers each solve request fans out
// to. Values below one fall back to DefaultWorkers.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers < 1 {
			workers = DefaultWorkers()
		}
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &letterbox.BasicMetricsCollector{}
//	eng := letterbox.New(letterbox.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Avg latency: %dns\n", stats.SolveCount, stats.SolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := letterbox.NewJSONLogger(slog.LevelInfo)
//	eng := letterbox.New(letterbox.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          DefaultWorkers(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
