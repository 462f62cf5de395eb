package letterbox

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFilter is called after each candidate filter pass.
	// candidates is the number of words that survived, duration is the
	// total time taken, err is nil if successful.
	RecordFilter(candidates int, duration time.Duration, err error)

	// RecordChunk is called for each chunk the aggregator accepts.
	// solutions is the number of solutions the chunk carried.
	RecordChunk(solutions int)

	// RecordSolve is called when a request completes all workers.
	// solutions is the total across buckets, duration is request wall time.
	RecordSolve(solutions int, duration time.Duration)

	// RecordSupersede is called when a newer request displaces a
	// running one.
	RecordSupersede()

	// RecordDecodeError is called when a worker fails to decode its
	// candidate buffer.
	RecordDecodeError()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFilter(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordChunk(int)                        {}
func (NoopMetricsCollector) RecordSolve(int, time.Duration)         {}
func (NoopMetricsCollector) RecordSupersede()                       {}
func (NoopMetricsCollector) RecordDecodeError()                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterTotalNanos atomic.Int64
	ChunkCount       atomic.Int64
	SolveCount       atomic.Int64
	SolveSolutions   atomic.Int64
	SolveTotalNanos  atomic.Int64
	SupersedeCount   atomic.Int64
	DecodeErrors     atomic.Int64
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(candidates int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FilterErrors.Add(1)
	}
}

// RecordChunk implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunk(solutions int) {
	b.ChunkCount.Add(1)
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(solutions int, duration time.Duration) {
	b.SolveCount.Add(1)
	b.SolveSolutions.Add(int64(solutions))
	b.SolveTotalNanos.Add(duration.Nanoseconds())
}

// RecordSupersede implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSupersede() {
	b.SupersedeCount.Add(1)
}

// RecordDecodeError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecodeError() {
	b.DecodeErrors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FilterCount:    b.FilterCount.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		FilterAvgNanos: b.getAvgFilterNanos(),
		ChunkCount:     b.ChunkCount.Load(),
		SolveCount:     b.SolveCount.Load(),
		SolveSolutions: b.SolveSolutions.Load(),
		SolveAvgNanos:  b.getAvgSolveNanos(),
		SupersedeCount: b.SupersedeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFilterNanos() int64 {
	count := b.FilterCount.Load()
	if count == 0 {
		return 0
	}
	return b.FilterTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FilterCount    int64
	FilterErrors   int64
	FilterAvgNanos int64
	ChunkCount     int64
	SolveCount     int64
	SolveSolutions int64
	SolveAvgNanos  int64
	SupersedeCount int64
	DecodeErrors   int64
}
