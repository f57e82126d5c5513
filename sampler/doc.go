// Package sampler implements the deterministic jittered-grid sample-point
// generator.
//
// What:
//   - Scans a deterministic grid of candidate positions across the ROI's
//     bounding box, jitters each one by a bounded uniform offset, and
//     keeps the ones that land inside the ROI and outside any obstacle.
//
// Determinism:
//   - Scan order is x-major then z-major.
//   - Jitter is drawn in a fixed order per cell: x jitter, then z jitter.
//   - Accepted points are indexed 0..N-1 in acceptance order.
//   - The RNG stream is threaded in explicitly (package rng); nothing
//     here touches a process-global random source.
package sampler
