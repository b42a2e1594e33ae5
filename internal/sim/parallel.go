package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Ensemble repeats independent noisy 0D runs with consecutive seeds.
type Ensemble struct {
	params    Params
	numRuns   int
	seedStart int64
	opts      []Option
}

// NewEnsemble prepares numRuns runs seeded seedStart, seedStart+1, ... The
// options are applied to every run and must be safe for concurrent use.
func NewEnsemble(p Params, numRuns int, seedStart int64, opts ...Option) *Ensemble {
	return &Ensemble{params: p, numRuns: numRuns, seedStart: seedStart, opts: opts}
}

// NoisySingleReactions returns one trajectory per run, in seed order.
func (e *Ensemble) NoisySingleReactions(ctx context.Context, a0 *complex128, beta, dt float64, nit int) ([][]complex128, error) {
	if e.numRuns <= 0 {
		return nil, dynamo.ConfigError("ensemble needs at least one run, got %d", e.numRuns)
	}
	results := make([][]complex128, e.numRuns)
	errs := make([]error, e.numRuns)

	dynamo.ParallelFor(e.numRuns, 1, func(start, end int) {
		for idx := start; idx < end; idx++ {
			if err := ctx.Err(); err != nil {
				errs[idx] = fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, err)
				continue
			}
			p := e.params
			p.Seed = e.seedStart + int64(idx)

			s, err := New(p, e.opts...)
			if err != nil {
				errs[idx] = err
				continue
			}
			results[idx], errs[idx] = s.NoisyChainedSingleReaction(a0, beta, dt, nit)
		}
	})

	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", idx, err)
		}
	}
	return results, nil
}
