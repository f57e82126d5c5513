// Package prune implements the post-solve cleanup pass: removing
// candidates the solver selected but did not strictly need, and picking
// the best yaw for every selected position.
//
// Prune is a single deterministic pass, not a search: it iterates
// selected candidates in ascending index order, tentatively drops each,
// and commits the removal if the reduced set still satisfies the
// current overlap mode (percent_target relaxes, here, to plain ≥1
// coverage per sample — the aggregate k-target clause is not
// re-checked after the solver has already met it). No backtracking.
//
// RefineYaw groups all candidate variants (selected or not) sharing a
// position, rounded to 4 decimal places, and reassigns every selected
// entry at that position the yaw whose covered-set is largest. It is a
// no-op for dome/360° sensors, whose candidates all carry yaw 0.
package prune
