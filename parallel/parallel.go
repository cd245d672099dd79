package parallel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// Chunks cuts s into consecutive sub-regions that start and end on cell
// boundaries, except for the first start and the last end which follow s.
// Every chunk spans at most chunkCells cells.
func Chunks[O order.Cursor, T store.Word](s bitvec.Slice[O, T], chunkCells int) []bitvec.Slice[O, T] {
	if s.IsEmpty() {
		return nil
	}
	if chunkCells < 1 {
		chunkCells = 1
	}

	size := uint(chunkCells) * uint(store.Bits[T]())
	next := size - uint(s.Ptr().Head())

	out := make([]bitvec.Slice[O, T], 0, s.Ptr().Cells()/uint(chunkCells)+1)
	for rest := s; !rest.IsEmpty(); next = size {
		chunk, tail, err := rest.SplitAt(min(next, rest.Len()))
		if err != nil {
			panic("bitvec: chunk split out of range")
		}
		out = append(out, chunk)
		rest = tail
	}
	return out
}

func run[O order.Cursor, T store.Word](ctx context.Context, op string, s bitvec.Slice[O, T], o options, f func(i int, chunk bitvec.Slice[O, T]) error) error {
	start := time.Now()
	chunks := Chunks(s, o.chunkCells)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, chunk := range chunks {
		g.Go(func() error {
			if err := o.controller.AcquireWorker(gctx); err != nil {
				return err
			}
			defer o.controller.ReleaseWorker()
			return f(i, chunk)
		})
	}

	err := g.Wait()
	o.metrics.RecordParallel(op, len(chunks), time.Since(start), err)
	o.logger.LogParallel(ctx, op, s.Len(), len(chunks), err)
	return err
}

func apply(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Fill sets every bit of s to v.
func Fill[O order.Cursor, T store.Word](ctx context.Context, s bitvec.Slice[O, T], v bool, opts ...Option) error {
	return run(ctx, "fill", s, apply(opts), func(_ int, chunk bitvec.Slice[O, T]) error {
		chunk.Fill(v)
		return nil
	})
}

// Not inverts every bit of s.
func Not[O order.Cursor, T store.Word](ctx context.Context, s bitvec.Slice[O, T], opts ...Option) error {
	return run(ctx, "not", s, apply(opts), func(_ int, chunk bitvec.Slice[O, T]) error {
		chunk.Not()
		return nil
	})
}

// CountOnes returns the number of set bits of s.
func CountOnes[O order.Cursor, T store.Word](ctx context.Context, s bitvec.Slice[O, T], opts ...Option) (uint, error) {
	o := apply(opts)
	counts := make([]uint, len(Chunks(s, o.chunkCells)))
	err := run(ctx, "count", s, o, func(i int, chunk bitvec.Slice[O, T]) error {
		counts[i] = chunk.CountOnes()
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total uint
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// CopyFrom copies src into dst chunk by chunk. The regions must have the
// same length and must not overlap.
func CopyFrom[O order.Cursor, T store.Word](ctx context.Context, dst, src bitvec.Slice[O, T], opts ...Option) error {
	if dst.Len() != src.Len() {
		return &bitvec.ErrLengthMismatch{Expected: dst.Len(), Actual: src.Len()}
	}

	o := apply(opts)
	chunks := Chunks(dst, o.chunkCells)
	starts := make([]uint, len(chunks))
	var at uint
	for i, chunk := range chunks {
		starts[i] = at
		at += chunk.Len()
	}

	return run(ctx, "copy", dst, o, func(i int, chunk bitvec.Slice[O, T]) error {
		from, err := src.Slice(starts[i], starts[i]+chunk.Len())
		if err != nil {
			return err
		}
		return chunk.CopyFrom(from)
	})
}
