// Package config defines PlannerSettings, the overlap coverage regimes,
// and the functional-option constructor used to build an immutable
// Settings value with documented defaults.
//
// Design:
//   - Settings is built once via New(opts...) and never mutated afterward.
//   - Every field has a documented default; callers only set what differs.
//   - LoadFile parses a YAML params file from disk (ambient config-loading
//     concern; never used from within the pure solve pipeline itself).
package config
