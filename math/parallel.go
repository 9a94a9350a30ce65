package math

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/db47h/decint"
)

// minChunk is the smallest number of terms handed to a single goroutine.
const minChunk = 64

// ParallelSum sets z to the sum of xs and returns z. Partial sums of
// contiguous chunks of xs are computed by up to jobs goroutines and combined
// on the calling goroutine; jobs <= 0 means runtime.GOMAXPROCS(0).
//
// The elements of xs are only read and must not be modified concurrently.
// ParallelSum stops early and returns ctx.Err() if ctx is cancelled; z is
// unchanged in that case.
func ParallelSum(ctx context.Context, z *decint.Int, xs []*decint.Int, jobs int) (*decint.Int, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	chunks := (len(xs) + minChunk - 1) / minChunk
	if chunks <= 1 || jobs == 1 {
		if err := ctx.Err(); err != nil {
			return z, err
		}
		return Sum(z, xs...), nil
	}
	size := (len(xs) + chunks - 1) / chunks

	// partial sums are written by index, no locking needed
	partials := make([]decint.Int, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, chunks))
	for i := range partials {
		i := i
		lo := i * size
		hi := min(lo+size, len(xs))
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			Sum(&partials[i], xs[lo:hi]...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return z, err
	}

	var acc decint.Int
	for i := range partials {
		acc.Add(&acc, &partials[i])
	}
	return z.Set(&acc), nil
}
