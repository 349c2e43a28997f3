package metrics_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/torosent/thor/internal/metrics"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "deadline passed" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want metrics.Kind
	}{
		{"nil", nil, ""},
		{"deadline exceeded", context.DeadlineExceeded, metrics.KindTimeout},
		{
			"wrapped deadline",
			&url.Error{Op: "Get", URL: "http://example.com", Err: context.DeadlineExceeded},
			metrics.KindTimeout,
		},
		{"net timeout", fakeTimeoutError{}, metrics.KindTimeout},
		{
			"connection refused",
			&url.Error{Op: "Get", URL: "http://example.com", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}},
			metrics.KindConnection,
		},
		{"connection reset", fmt.Errorf("read: %w", syscall.ECONNRESET), metrics.KindConnection},
		{"dns failure", &net.DNSError{Err: "no such host", Name: "nope.invalid"}, metrics.KindConnection},
		{"generic", errors.New("boom"), metrics.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestHTTPKind(t *testing.T) {
	if got := metrics.HTTPKind(503); got != metrics.Kind("http_503") {
		t.Errorf("HTTPKind(503) = %q, want http_503", got)
	}
	if !metrics.HTTPKind(404).IsHTTP() {
		t.Errorf("HTTPKind(404).IsHTTP() = false, want true")
	}
	if metrics.KindTimeout.IsHTTP() {
		t.Errorf("KindTimeout.IsHTTP() = true, want false")
	}
}
