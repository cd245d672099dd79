package resource

import "fmt"

// ErrMemoryLimitExceeded indicates a reservation that can never fit under
// the configured limit.
type ErrMemoryLimitExceeded struct {
	Requested int64
	Limit     int64
}

func (e *ErrMemoryLimitExceeded) Error() string {
	return fmt.Sprintf("memory reservation of %d bytes exceeds limit of %d bytes", e.Requested, e.Limit)
}
