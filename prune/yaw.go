package prune

import (
	"math"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/sensor"
)

// posKey is a fixed-point position key, rounding to 4 decimal places via
// integer scaling rather than a float map key, to avoid float-equality
// hazards.
type posKey struct {
	x, z int64
}

func roundKey(x, z float64) posKey {
	return posKey{
		x: int64(math.Round(x * 10000)),
		z: int64(math.Round(z * 10000)),
	}
}

// RefineYaw groups every candidate variant (selected or not) by rounded
// position and, for each position present among selected, returns the
// yaw of the variant with the largest covered-set at that position
// (ties broken by first occurrence in ascending candidate-index order).
// It is a no-op for dome sensors: every candidate there already carries
// yaw 0, so the returned map is the identity.
//
// Complexity: O(len(allCandidates)).
func RefineYaw(selected []int, allCandidates []candidate.Candidate, model sensor.Model) map[int]float64 {
	out := make(map[int]float64, len(selected))
	if model.IsDome() {
		for _, idx := range selected {
			out[idx] = allCandidates[idx].YawDeg
		}
		return out
	}

	bestYawAt := make(map[posKey]float64)
	bestCoveredAt := make(map[posKey]int)
	seen := make(map[posKey]bool)
	for _, c := range allCandidates {
		key := roundKey(c.X, c.Z)
		n := len(c.Covered)
		if !seen[key] || n > bestCoveredAt[key] {
			seen[key] = true
			bestCoveredAt[key] = n
			bestYawAt[key] = c.YawDeg
		}
	}

	for _, idx := range selected {
		c := allCandidates[idx]
		out[idx] = bestYawAt[roundKey(c.X, c.Z)]
	}
	return out
}
