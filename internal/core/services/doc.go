// Package services implements the aggregation layer: pure folds that
// turn revision, comment, and activity records into per-user statistics
// and time-series metrics, plus the Analyzer that orchestrates a full
// report run over the driven ports.
//
// Every aggregator is a pure function over its input slice: re-running
// one on the same input yields an identical result, and no state leaks
// between calls.
package services
