// Package hyperspace computes optimal LiDAR sensor placements over a 2D
// planar region of interest so that every ground sample point is observed
// by at least k distinct sensors.
//
// What:
//
//   - Deterministic sampling and candidate generation over a polygonal
//     region with polygonal obstacles (packages geometry, sampler, candidate).
//   - Precomputation of coverage relations under range/FOV/LOS rules (coverage).
//   - A k-coverage set-cover search bound by a wall-clock budget (solver).
//   - Post-solve pruning, yaw refinement, and coverage statistics
//     (prune, stats).
//
// Why:
//
//   - Facility/warehouse tracking deployments need the fewest LiDARs that
//     still guarantee redundant (k-fold) floor coverage.
//   - The search space (candidate positions × yaws) is too large to
//     enumerate by hand; this package turns it into a bounded, repeatable
//     optimization run.
//
// Entry point:
//
//	result, err := hyperspace.Solve(params)
//
// Solve is deterministic: identical Params produce byte-identical
// Results (same seed ⇒ same sampling, candidate generation, and solver
// search order) as long as the solver finishes its passes within
// SolverTimeLimit. Package solver reads the system clock only to enforce
// that limit; no package uses a process-global RNG, and every randomized
// step takes an explicit seed.
//
// Subpackages:
//
//	sensor/     — SensorModel and effective floor radius
//	config/     — PlannerSettings, overlap modes, functional options
//	rng/        — deterministic, derivable PRNG streams
//	geometry/   — point-in-polygon, Minkowski buffering, polygon union
//	sampler/    — jittered grid sample points
//	candidate/  — candidate sensor positions + yaws
//	occupancy/  — obstacle occupancy grid + line-of-sight queries
//	coverage/   — candidate -> covered sample index sets
//	solver/     — k-coverage set-cover search
//	prune/      — redundant-sensor pruning + yaw refinement
//	stats/      — coverage statistics and result shaping
//	cmd/hyperspacectl — ambient CLI wrapping Solve
package hyperspace
