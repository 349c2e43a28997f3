// Package metrics defines the data model for a load run: per-attempt
// outcomes, per-worker tallies, the failure-kind taxonomy, and the pure
// aggregation step that merges tallies into a final report.
//
// Tallies are single-owner values: each worker mutates only its own tally,
// so the hot path needs no locks. Latency distributions are recorded into
// per-worker HdrHistograms and merged at aggregation time.
package metrics
