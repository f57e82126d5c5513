// Package stats computes coverage statistics over a final selected set
// and assembles the deduplicated, capped position list returned to the
// caller.
package stats
