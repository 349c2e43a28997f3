// Package httpclient issues the individual GET requests of a load run and
// reports each attempt's outcome as data.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/torosent/thor/internal/metrics"
)

// Executor performs single HTTP GET attempts. Every failure mode is captured
// in the returned outcome; nothing escapes as a panic or an error value, so
// one bad request can never abort a run.
type Executor struct {
	client *http.Client
}

// NewExecutor wraps an HTTP client. A nil client gets the default transport
// and timeout.
func NewExecutor(client *http.Client) *Executor {
	if client == nil {
		client = NewClient(DefaultTimeout)
	}
	return &Executor{client: client}
}

// Execute issues one GET against target and measures its latency. A response
// with status >= 400 counts as a failure attributed to the status code;
// transport errors are classified into timeout/connection/unknown kinds.
func (e *Executor) Execute(ctx context.Context, target string) metrics.Outcome {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return metrics.Outcome{Latency: time.Since(start), Kind: metrics.KindUnknown}
	}

	resp, err := e.client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return metrics.Outcome{Latency: latency, Kind: metrics.Classify(err)}
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused by the next attempt.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return metrics.Outcome{
			Latency: latency,
			Status:  resp.StatusCode,
			Kind:    metrics.HTTPKind(resp.StatusCode),
		}
	}

	return metrics.Outcome{OK: true, Latency: latency, Status: resp.StatusCode}
}
