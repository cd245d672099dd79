package parallel

import (
	"runtime"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/resource"
)

// DefaultChunkCells is the chunk size, in cells, used when none is set.
const DefaultChunkCells = 4096

type options struct {
	chunkCells int
	workers    int
	controller *resource.Controller
	logger     *bitvec.Logger
	metrics    bitvec.MetricsCollector
}

func defaultOptions() options {
	return options{
		chunkCells: DefaultChunkCells,
		workers:    runtime.GOMAXPROCS(0),
		logger:     bitvec.NoopLogger(),
		metrics:    bitvec.NoopMetricsCollector{},
	}
}

// Option configures a parallel operation.
type Option func(*options)

// WithChunkCells sets the number of cells per chunk. Values below 1 are
// ignored.
func WithChunkCells(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkCells = n
		}
	}
}

// WithWorkers caps the goroutines used by a single call. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithController takes a worker slot from rc for every chunk.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithLogger sets the logger.
func WithLogger(l *bitvec.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m bitvec.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
