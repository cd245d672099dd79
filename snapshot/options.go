package snapshot

import (
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/access"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/resource"
)

type options struct {
	codec      codec.Codec
	mode       access.Mode
	controller *resource.Controller
	logger     *bitvec.Logger
	metrics    bitvec.MetricsCollector
}

func defaultOptions() options {
	return options{
		codec:   codec.Default,
		mode:    access.Synchronized,
		logger:  bitvec.NoopLogger(),
		metrics: bitvec.NoopMetricsCollector{},
	}
}

// Option configures Save and Load.
type Option func(*options)

// WithCodec selects the payload codec for Save. Load always uses the codec
// named in the envelope.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithAccess selects the access mode of the region returned by Load.
func WithAccess(mode access.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithController reserves memory for encoded blobs and throttles blob IO
// through rc.
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

func apply(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
