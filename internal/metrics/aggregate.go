package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Report is the merged summary of a completed run. It is constructed once
// after every worker has handed back its tally and is read-only thereafter.
type Report struct {
	Attempted      int64          `json:"attempted"`
	Succeeded      int64          `json:"succeeded"`
	Failed         int64          `json:"failed"`
	FailuresByKind map[Kind]int64 `json:"failures_by_kind,omitempty"`
	RequestsPerSec float64        `json:"requests_per_sec"`
	Incomplete     bool           `json:"incomplete,omitempty"`

	Elapsed     time.Duration `json:"-"`
	MinLatency  time.Duration `json:"-"`
	MaxLatency  time.Duration `json:"-"`
	MeanLatency time.Duration `json:"-"`
	P50Latency  time.Duration `json:"-"`
	P90Latency  time.Duration `json:"-"`
	P99Latency  time.Duration `json:"-"`

	// JSON-friendly millisecond fields.
	ElapsedMs     float64 `json:"elapsed_ms"`
	MinLatencyMs  float64 `json:"min_latency_ms"`
	MaxLatencyMs  float64 `json:"max_latency_ms"`
	MeanLatencyMs float64 `json:"mean_latency_ms"`
	P50LatencyMs  float64 `json:"p50_latency_ms"`
	P90LatencyMs  float64 `json:"p90_latency_ms"`
	P99LatencyMs  float64 `json:"p99_latency_ms"`
}

// Aggregate merges per-worker tallies into one report. It is a pure function
// over counts: commutative and associative, so tally order never changes the
// result. A zero or negative elapsed duration yields zero throughput rather
// than a fault.
func Aggregate(tallies []*Tally, elapsed time.Duration) Report {
	report := Report{Elapsed: elapsed}

	merged := hdrhistogram.New(1, 60_000_000, 3)
	var sumLatency time.Duration
	for _, tally := range tallies {
		if tally == nil {
			continue
		}
		report.Attempted += tally.Attempted
		report.Succeeded += tally.Succeeded
		report.Failed += tally.Failed
		sumLatency += tally.TotalLatency
		for kind, count := range tally.FailuresByKind {
			if report.FailuresByKind == nil {
				report.FailuresByKind = make(map[Kind]int64)
			}
			report.FailuresByKind[kind] += count
		}
		if tally.hist != nil {
			merged.Merge(tally.hist)
		}
	}

	if report.Attempted > 0 {
		report.MeanLatency = time.Duration(int64(sumLatency) / report.Attempted)
	}
	if merged.TotalCount() > 0 {
		report.MinLatency = time.Duration(merged.Min()) * time.Microsecond
		report.MaxLatency = time.Duration(merged.Max()) * time.Microsecond
		report.P50Latency = time.Duration(merged.ValueAtQuantile(50)) * time.Microsecond
		report.P90Latency = time.Duration(merged.ValueAtQuantile(90)) * time.Microsecond
		report.P99Latency = time.Duration(merged.ValueAtQuantile(99)) * time.Microsecond
	}
	if elapsed > 0 && report.Attempted > 0 {
		report.RequestsPerSec = float64(report.Attempted) / elapsed.Seconds()
	}

	report.ElapsedMs = float64(elapsed) / float64(time.Millisecond)
	report.MinLatencyMs = float64(report.MinLatency) / float64(time.Millisecond)
	report.MaxLatencyMs = float64(report.MaxLatency) / float64(time.Millisecond)
	report.MeanLatencyMs = float64(report.MeanLatency) / float64(time.Millisecond)
	report.P50LatencyMs = float64(report.P50Latency) / float64(time.Millisecond)
	report.P90LatencyMs = float64(report.P90Latency) / float64(time.Millisecond)
	report.P99LatencyMs = float64(report.P99Latency) / float64(time.Millisecond)

	return report
}
