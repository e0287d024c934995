// Package batch runs many engine requests concurrently on a bounded
// goroutine pool. Each request builds its own graph, so runs share nothing.
package batch

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/stepgraph/internal/engine"
)

// Result pairs one request with its outcome or error.
type Result struct {
	Index   int
	Request *engine.Request
	Outcome *engine.Outcome
	Err     error
}

// Runner executes requests.
type Runner interface {
	Run(req *engine.Request) (*engine.Outcome, error)
}

// Run executes reqs on a pool of at most workers goroutines and returns the
// results in input order. A failing request does not stop the others; only
// pool creation and submission failures are returned as errors.
func Run(r Runner, reqs []*engine.Request, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(workers, func(arg interface{}) {
		defer wg.Done()
		i := arg.(int)
		out, err := r.Run(reqs[i])
		results[i] = Result{Index: i, Request: reqs[i], Outcome: out, Err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("batch: failed to create pool: %w", err)
	}
	defer pool.Release()

	for i := range reqs {
		wg.Add(1)
		if err := pool.Invoke(i); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("batch: failed to submit request #%d: %w", i+1, err)
		}
	}
	wg.Wait()

	return results, nil
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
