// Package parallel runs bulk region operations on several goroutines.
//
// The region is cut into cell-aligned chunks, so no two chunks share a cell
// and the operations are safe under both access modes. Chunks are processed
// by an errgroup; a resource.Controller, when given, additionally caps the
// number of chunks in flight across all callers that share it.
//
//	n, err := parallel.CountOnes(ctx, bits,
//	    parallel.WithController(rc),
//	    parallel.WithLogger(bitvec.NewTextLogger(slog.LevelDebug)),
//	)
package parallel
