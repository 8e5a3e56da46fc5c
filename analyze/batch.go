package analyze

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/intentify/core"
)

// AnalyzeBatch classifies many queries in parallel over a worker pool and
// returns results in input order. The whole batch is validated up front, so
// a malformed query fails fast before any work is scheduled. Queries run
// independently; cancellation stops further scheduling but lets already
// submitted queries finish, since a single pipeline run never blocks.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, queries []string) ([]*core.AnalysisResult, error) {
	if err := core.ValidateQueries(queries); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(a.poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]*core.AnalysisResult, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		i, query := i, query // per-iteration copies; closures below run concurrently (pre-Go 1.22 loop semantics)
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = a.Analyze(query)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
			break
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}
	return results, nil
}
