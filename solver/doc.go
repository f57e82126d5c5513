// Package solver formulates and solves the k-coverage set-cover problem:
// choose the minimum number of candidates such that every coverable
// sample meets its overlap-mode-specific coverage requirement.
//
// Backend:
//
//	The search is implemented directly rather than delegated to a
//	constraint-programming, ILP, or SAT library: a deterministic greedy
//	construction followed by a bounded local-search improvement pass,
//	both driven by an explicit seeded RNG and a soft wall-clock deadline
//	checked once per greedy pick (each pick scans every candidate) and
//	before each restart.
//
// Determinism:
//
//	Construction always breaks ties by ascending candidate index; the
//	local-search phase consumes the seeded RNG in a fixed draw order.
//	Equal inputs produce an equal selection whenever every pass
//	finishes before the deadline.
//
// Overlap modes:
//
//	Everywhere:    every coverable sample needs >= KRequired covering.
//	CriticalOnly:  critical samples need >= KRequired; others need >= 1.
//	PercentTarget: every coverable sample needs >= 1; additionally at
//	               least floor(OverlapTargetPct * N) samples must reach
//	               KRequired (one-way indicator semantics: a sample that
//	               happens to meet KRequired is not required to count
//	               toward the target).
//
// Infeasibility recovery: a failed solve retries once with Everywhere /
// KRequired=1, appending a warning; a second failure is fatal.
package solver
