package runner

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/torosent/thor/internal/metrics"
)

// Runner fans a fixed batch of requests out across parallel workers and
// merges their tallies into one report.
type Runner struct {
	opt Options
}

func New(opt Options) *Runner {
	opt.normalize()
	return &Runner{opt: opt}
}

// Run validates the options, executes Workers×RequestsPerWorker attempts,
// and returns the aggregated report. If validation fails, no worker starts
// and no request is issued.
//
// Cancelling ctx stops workers from issuing further requests; their partial
// tallies are still collected and the report is marked incomplete.
func (r *Runner) Run(ctx context.Context) (metrics.Report, error) {
	if err := r.opt.validate(); err != nil {
		return metrics.Report{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	limiter := r.opt.LimiterFactory(r.opt.RatePerSecond)

	start := time.Now()

	// Each worker writes only its own slot, so the slice needs no lock.
	tallies := make([]*metrics.Tally, r.opt.Workers)
	var wg sync.WaitGroup
	wg.Add(r.opt.Workers)
	for i := 0; i < r.opt.Workers; i++ {
		go func(id int) {
			defer wg.Done()
			tallies[id] = r.runWorker(ctx, id, limiter)
		}(i)
	}

	// The join is unconditional: every worker hands back its tally, success
	// or failure, so no partial result is ever dropped.
	wg.Wait()
	elapsed := time.Since(start)

	report := metrics.Aggregate(tallies, elapsed)
	if ctx.Err() != nil {
		report.Incomplete = true
	}
	return report, nil
}

// runWorker performs the worker's request quota sequentially. Concurrency
// comes only from multiple workers; requests never overlap inside one
// worker. The tally is owned by this goroutine until the run joins.
func (r *Runner) runWorker(ctx context.Context, id int, limiter *rate.Limiter) *metrics.Tally {
	tally := metrics.NewTally(id)
	for i := 0; i < r.opt.RequestsPerWorker; i++ {
		if ctx.Err() != nil {
			return tally
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return tally
			}
		}
		tally.Record(r.opt.Executor.Execute(ctx, r.opt.TargetURL))
	}
	return tally
}
