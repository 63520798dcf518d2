package workload

import (
	"context"
	"sync"
)

// Ensemble replays one scenario numRuns times concurrently, each run
// with its own vector and its own seed (seedStart + run index). The
// container itself is single-threaded; the ensemble never shares one
// between goroutines.
type Ensemble struct {
	base      Scenario
	numRuns   int
	seedStart int64
}

func NewEnsemble(base Scenario, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: base, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sc := e.base
			sc.Seed = e.seedStart + int64(idx)

			results[idx], errs[idx] = NewRunner().Run(ctx, sc)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Summary condenses an ensemble's results.
type Summary struct {
	Runs          int
	MeanFinalSize float64
	MaxFinalCap   int
	TotalReallocs int
	TotalRejected int
}

func Summarize(results []*Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	total := 0
	for _, r := range results {
		if r == nil {
			continue
		}
		total += r.FinalSize
		if r.FinalCap > s.MaxFinalCap {
			s.MaxFinalCap = r.FinalCap
		}
		s.TotalReallocs += r.Reallocs
		s.TotalRejected += r.Rejected
	}
	s.MeanFinalSize = float64(total) / float64(len(results))
	return s
}
