// Package output renders a finished run's report as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/torosent/thor/internal/metrics"
)

// PrintReport outputs a human-readable summary report. Verbose mode adds
// the per-kind failure breakdown.
func PrintReport(w io.Writer, report metrics.Report, verbose bool) {
	fmt.Fprintln(w, "\n--- Load Test Results ---")
	if report.Incomplete {
		fmt.Fprintln(w, "(run interrupted; totals cover completed attempts only)")
	}
	fmt.Fprintf(w, "Total Requests:    %d\n", report.Attempted)
	fmt.Fprintf(w, "Successful:        %d\n", report.Succeeded)
	fmt.Fprintf(w, "Failed:            %d\n", report.Failed)
	fmt.Fprintf(w, "Duration:          %s\n", report.Elapsed)
	fmt.Fprintf(w, "Requests/sec:      %.2f\n", report.RequestsPerSec)
	fmt.Fprintln(w, "\nLatency:")
	fmt.Fprintf(w, "  Min:             %s\n", report.MinLatency)
	fmt.Fprintf(w, "  Max:             %s\n", report.MaxLatency)
	fmt.Fprintf(w, "  Mean:            %s\n", report.MeanLatency)
	fmt.Fprintf(w, "  P50:             %s\n", report.P50Latency)
	fmt.Fprintf(w, "  P90:             %s\n", report.P90Latency)
	fmt.Fprintf(w, "  P99:             %s\n", report.P99Latency)

	if verbose {
		fmt.Fprintln(w, "\nFailures by Kind:")
		writeFailureBreakdown(w, report.FailuresByKind, "  ")
	}
}

// PrintJSONReport outputs a JSON-formatted report.
func PrintJSONReport(w io.Writer, report metrics.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeFailureBreakdown(w io.Writer, byKind map[metrics.Kind]int64, indent string) {
	if len(byKind) == 0 {
		fmt.Fprintf(w, "%sNone\n", indent)
		return
	}
	kinds := make([]string, 0, len(byKind))
	for kind := range byKind {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "%s%s: %d\n", indent, kind, byKind[metrics.Kind(kind)])
	}
}
