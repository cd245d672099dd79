package bitvec

import "github.com/hupe1980/bitvec/access"

type options struct {
	mode access.Mode
}

func defaultOptions() options {
	return options{mode: access.Synchronized}
}

// Option configures region construction.
type Option func(*options)

// WithAccess selects how the region touches its cells.
//
// access.Synchronized (the default) makes every cell update an atomic
// read-modify-write, so handles that share a cell may be written from
// different goroutines.
//
// access.Exclusive uses plain loads and stores. It is meant for
// single-goroutine use, or for targets without atomic instructions; mutating
// handles must then not be shared between goroutines without external locking.
func WithAccess(mode access.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}
