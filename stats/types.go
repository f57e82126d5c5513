package stats

// Position is one deduplicated, yaw-refined sensor placement in the
// final result.
type Position struct {
	X, Z, Yaw float64
}
