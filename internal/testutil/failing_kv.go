package testutil

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/bluecal/internal/kv"
)

// FailOnNthSet is a test backend that injects an error on the Nth Set
// call. This enables persist-failure tests by simulating a write error
// at a precise point while reads pass through normally.
//
// Set calls are counted starting at 1.
type FailOnNthSet struct {
	Backend kv.Store
	FailOn  int32
	Err     error

	count atomic.Int32
}

func (f *FailOnNthSet) Get(ctx context.Context, key string) (string, bool, error) {
	return f.Backend.Get(ctx, key)
}

func (f *FailOnNthSet) Set(ctx context.Context, key, value string) error {
	n := f.count.Add(1)
	if n == f.FailOn {
		return f.Err
	}
	return f.Backend.Set(ctx, key, value)
}
