// Package rng centralizes deterministic random generation for the
// placement pipeline.
//
// Goals:
//   - Determinism: same seed => identical draws across platforms.
//   - Encapsulation: a single factory; no time-based sources anywhere.
//   - No global state: every randomized step takes an explicit stream.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Derive an independent stream per
//     goroutine via Derive instead of sharing one.
package rng
