package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// Kind categorizes a failed request attempt.
type Kind string

const (
	KindTimeout    Kind = "timeout"
	KindConnection Kind = "connection"
	KindUnknown    Kind = "unknown"
)

// HTTPKind returns the failure kind for a response with an error status code.
func HTTPKind(status int) Kind {
	return Kind(fmt.Sprintf("http_%d", status))
}

// IsHTTP reports whether the kind represents an HTTP error response.
func (k Kind) IsHTTP() bool {
	return strings.HasPrefix(string(k), "http_")
}

// Classify maps a transport-level error to a failure kind. Timeouts are
// checked before connection errors because net.OpError wraps both.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnection
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return KindConnection
	}

	return KindUnknown
}
