package bitvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    saveCounter    prometheus.Counter
//	    chunkHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSnapshotSave(bytes int, duration time.Duration, err error) {
//	    p.saveCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordSnapshotSave is called after a region is persisted.
	// bytes is the encoded size, err is nil if successful.
	RecordSnapshotSave(bytes int, duration time.Duration, err error)

	// RecordSnapshotLoad is called after a region is restored.
	RecordSnapshotLoad(bytes int, duration time.Duration, err error)

	// RecordParallel is called after a chunked bulk operation.
	// chunks is the number of work units the region was split into.
	RecordParallel(op string, chunks int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSnapshotSave(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordSnapshotLoad(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordParallel(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveBytes      atomic.Int64
	SaveTotalNanos atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	LoadBytes      atomic.Int64
	ParallelCount  atomic.Int64
	ParallelErrors atomic.Int64
	ParallelChunks atomic.Int64
}

// RecordSnapshotSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotSave(bytes int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(int64(bytes))
}

// RecordSnapshotLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotLoad(bytes int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadBytes.Add(int64(bytes))
}

// RecordParallel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParallel(_ string, chunks int, _ time.Duration, err error) {
	b.ParallelCount.Add(1)
	b.ParallelChunks.Add(int64(chunks))
	if err != nil {
		b.ParallelErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SaveCount:      b.SaveCount.Load(),
		SaveErrors:     b.SaveErrors.Load(),
		SaveBytes:      b.SaveBytes.Load(),
		SaveAvgNanos:   b.getAvgSaveNanos(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadBytes:      b.LoadBytes.Load(),
		ParallelCount:  b.ParallelCount.Load(),
		ParallelErrors: b.ParallelErrors.Load(),
		ParallelChunks: b.ParallelChunks.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSaveNanos() int64 {
	count := b.SaveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SaveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SaveCount      int64
	SaveErrors     int64
	SaveBytes      int64
	SaveAvgNanos   int64
	LoadCount      int64
	LoadErrors     int64
	LoadBytes      int64
	ParallelCount  int64
	ParallelErrors int64
	ParallelChunks int64
}
