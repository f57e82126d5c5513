package sampler

// Point is a generated sample location. Index is assigned in acceptance
// order and is stable once generated; Critical is set by MarkCritical and
// is the only mutable field, written exactly once per run.
type Point struct {
	Index    int
	X, Z     float64
	Critical bool
}
