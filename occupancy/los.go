package occupancy

import "math"

// Blocked reports whether the line of sight between (cx, cz) and
// (px, pz) is blocked by an occupied cell in grid, ray-marching in
// half-cell steps. A nil grid never blocks. Endpoints (i=0 and i=n)
// are intentionally excluded from the march so sensor and sample
// locations are never self-occluding.
//
// Complexity: O(dist / (0.5 * CellSize)).
func Blocked(cx, cz, px, pz float64, grid *Grid) bool {
	if grid == nil {
		return false
	}

	dx := px - cx
	dz := pz - cz
	dist := math.Hypot(dx, dz)
	if dist < 0.01 {
		return false
	}

	n := int(dist/(0.5*grid.CellSize)) + 1
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		x := cx + dx*t
		z := cz + dz*t
		if grid.Occupied(x, z) {
			return true
		}
	}
	return false
}
