// Package coverage computes, for each candidate, the set of sample
// indices it observes under range, horizontal-FOV, and (optional)
// line-of-sight rules.
package coverage
