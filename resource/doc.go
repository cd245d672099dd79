// Package resource bounds the work done on behalf of bit regions.
//
// A Controller governs three resources:
//
//   - Memory: reservations for scratch buffers (record encoding, snapshots)
//   - Workers: the number of parallel chunk jobs running at once
//   - IO: a token bucket over bytes written to or read from blob stores
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:         4,
//	    IOLimitBytesPerSec: 64 << 20,
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Nil Safety
//
// All methods accept a nil *Controller and then impose no limit.
package resource
