package metrics

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Outcome is the result of a single request attempt. It is produced by the
// executor and folded into a worker's tally immediately.
type Outcome struct {
	OK      bool
	Latency time.Duration
	Status  int  // HTTP status code when a response was received
	Kind    Kind // failure kind when OK is false
}

// Tally accumulates one worker's results. A tally is owned and mutated by
// exactly one worker goroutine until the run joins, so it needs no locking.
type Tally struct {
	WorkerID       int
	Attempted      int64
	Succeeded      int64
	Failed         int64
	FailuresByKind map[Kind]int64
	TotalLatency   time.Duration

	hist *hdrhistogram.Histogram
}

// NewTally creates an empty tally for the given worker.
func NewTally(workerID int) *Tally {
	// Track latencies from 1µs up to 60s with 3 significant figures.
	return &Tally{
		WorkerID:       workerID,
		FailuresByKind: make(map[Kind]int64),
		hist:           hdrhistogram.New(1, 60_000_000, 3),
	}
}

// Record folds one outcome into the tally. Every attempt is counted exactly
// once, success or failure.
func (t *Tally) Record(o Outcome) {
	t.Attempted++
	t.TotalLatency += o.Latency

	if o.Latency > 0 && t.hist != nil {
		us := o.Latency.Microseconds()
		if us < t.hist.LowestTrackableValue() {
			us = t.hist.LowestTrackableValue()
		}
		if us > t.hist.HighestTrackableValue() {
			us = t.hist.HighestTrackableValue()
		}
		_ = t.hist.RecordValue(us)
	}

	if o.OK {
		t.Succeeded++
		return
	}
	t.Failed++
	kind := o.Kind
	if kind == "" {
		kind = KindUnknown
	}
	if t.FailuresByKind == nil {
		t.FailuresByKind = make(map[Kind]int64)
	}
	t.FailuresByKind[kind]++
}
