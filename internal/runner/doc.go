// Package runner provides the concurrent dispatch engine for thor.
//
// A [Runner] spawns a configured number of workers, each of which drives an
// [Executor] through a fixed number of sequential request attempts. Workers
// own their tallies exclusively, block independently on their own I/O, and
// meet at a single join point before the run's report is aggregated.
//
//	r := runner.New(runner.Options{
//		TargetURL:         "http://example.com/",
//		Workers:           4,
//		RequestsPerWorker: 10,
//		Executor:          executor,
//	})
//	report, err := r.Run(ctx)
//
// Request failures are data, not errors: Run returns an error only when the
// configured load cannot be dispatched at all.
package runner
