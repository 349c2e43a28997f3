package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/torosent/thor/internal/config"
	"github.com/torosent/thor/internal/httpclient"
	"github.com/torosent/thor/internal/output"
	"github.com/torosent/thor/internal/runner"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one load test end to end. It returns an error only for
// configuration or dispatch failures; a run where every request failed is
// still a successful run with a report.
func run(args []string, out io.Writer) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	executor := httpclient.NewExecutor(httpclient.NewClient(cfg.Timeout))

	r := runner.New(runner.Options{
		TargetURL:         cfg.TargetURL,
		Workers:           cfg.Processes,
		RequestsPerWorker: cfg.Requests,
		RatePerSecond:     cfg.Rate,
		Executor:          executor,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := r.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.JSONOutput {
		return output.PrintJSONReport(out, report)
	}
	output.PrintReport(out, report, cfg.Verbose)
	return nil
}
