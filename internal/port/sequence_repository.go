package port

import "context"

type SequenceRepository interface {
	// Next atomically increments the named counter and returns the new
	// value. The counter is created on first use, so the first value
	// is 1. Concurrent callers across processes never see the same
	// value.
	Next(ctx context.Context, name string) (int64, error)
}
