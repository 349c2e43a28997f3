package runner

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/torosent/thor/internal/metrics"
)

// Executor abstracts performing a single request attempt. Implementations
// must report every failure mode through the outcome rather than panicking.
type Executor interface {
	Execute(ctx context.Context, target string) metrics.Outcome
}

// ErrNoExecutor is returned when a run is started without an executor wired
// in. It represents an inability to dispatch the configured load at all, as
// opposed to individual request failures, which are counted in the report.
var ErrNoExecutor = errors.New("executor is required")

// Options configure one load run. The value is treated as immutable for the
// duration of the run.
type Options struct {
	TargetURL         string
	Workers           int // parallel workers, each runs its own goroutine
	RequestsPerWorker int // sequential requests per worker
	RatePerSecond     int // total pacing across all workers (0 means unlimited)
	Executor          Executor

	LimiterFactory func(rps int) *rate.Limiter // optional injection for tests
}

func (o *Options) normalize() {
	if o.LimiterFactory == nil {
		o.LimiterFactory = func(rps int) *rate.Limiter {
			if rps <= 0 {
				return rate.NewLimiter(rate.Inf, 0)
			}
			// Burst equal to rps to smooth pacing under concurrency.
			return rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

// validate fails fast before any worker starts.
func (o Options) validate() error {
	if o.Executor == nil {
		return ErrNoExecutor
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", o.Workers)
	}
	if o.RequestsPerWorker < 1 {
		return fmt.Errorf("requests per worker must be >= 1, got %d", o.RequestsPerWorker)
	}
	if o.RatePerSecond < 0 {
		return fmt.Errorf("rate must be >= 0, got %d", o.RatePerSecond)
	}

	target := strings.TrimSpace(o.TargetURL)
	if target == "" {
		return errors.New("target URL is required")
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("target URL %q is not valid: %w", target, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("target URL %q must be absolute with a host", target)
	}

	return nil
}
