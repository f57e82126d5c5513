package stats

import (
	"math"

	"github.com/lnesto74/hyperspace/candidate"
)

// Coverage computes the fraction of points covered at least once and
// the fraction covered at least kRequired times, over the candidates at
// selected. Zero points yields zero for both.
//
// Complexity: O(len(selected) * avg(len(Covered)) + numPoints).
func Coverage(selected []int, candidates []candidate.Candidate, numPoints, kRequired int) (coveragePct, kCoveragePct float64) {
	if numPoints == 0 {
		return 0, 0
	}

	count := make([]int, numPoints)
	for _, idx := range selected {
		for _, p := range candidates[idx].Covered {
			count[p]++
		}
	}

	covered, kCovered := 0, 0
	for _, c := range count {
		if c >= 1 {
			covered++
		}
		if c >= kRequired {
			kCovered++
		}
	}

	return float64(covered) / float64(numPoints), float64(kCovered) / float64(numPoints)
}

// posKey is the fixed-point dedup key, rounding to 4 decimal places.
type posKey struct {
	x, z int64
}

func roundKey(x, z float64) posKey {
	return posKey{x: int64(math.Round(x * 10000)), z: int64(math.Round(z * 10000))}
}

// Assemble builds the final position list: one entry per selected
// candidate, yaw taken from yaws (falling back to the candidate's own
// YawDeg if absent), deduplicated by rounded (x,z) preserving first
// occurrence, then capped at maxSensors. truncated reports whether the
// cap actually dropped entries, so the caller can append a warning.
// kept holds the candidate indices backing positions, in the same
// order and after the same dedup/cap, so a caller can recompute
// coverage over exactly the set being returned rather than the
// pre-truncation selection.
//
// Complexity: O(len(selected)).
func Assemble(selected []int, candidates []candidate.Candidate, yaws map[int]float64, maxSensors int) (positions []Position, kept []int, truncated bool) {
	seen := make(map[posKey]bool, len(selected))
	out := make([]Position, 0, len(selected))
	idxs := make([]int, 0, len(selected))

	for _, idx := range selected {
		c := candidates[idx]
		key := roundKey(c.X, c.Z)
		if seen[key] {
			continue
		}
		seen[key] = true

		yaw, ok := yaws[idx]
		if !ok {
			yaw = c.YawDeg
		}
		out = append(out, Position{X: c.X, Z: c.Z, Yaw: yaw})
		idxs = append(idxs, idx)
	}

	if maxSensors > 0 && len(out) > maxSensors {
		return out[:maxSensors], idxs[:maxSensors], true
	}
	return out, idxs, false
}
