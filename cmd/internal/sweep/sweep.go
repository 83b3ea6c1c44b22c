package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/nelhage/paritytowers/hanoi"
	"golang.org/x/sync/errgroup"
)

var ErrBadRange = errors.New("bad disk range")

// Sweep solves every disk count in [from, to]. Each solve runs on a
// single goroutine; up to `threads` solves run at once. Results are
// ordered by disk count.
func Sweep(ctx context.Context, from, to, threads int) ([]hanoi.Result, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w [%d, %d]", ErrBadRange, from, to)
	}
	if threads < 1 {
		threads = 1
	}
	results := make([]hanoi.Result, to-from+1)
	next := int64(from - 1)

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for {
				n := int(atomic.AddInt64(&next, 1))
				if n > to {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				results[n-from] = hanoi.Solve(hanoi.Config{Disks: n})
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
