package candidate

// Candidate is a single (position, yaw) pair considered by the solver.
// Covered is populated exactly once, by package coverage, and is
// immutable thereafter.
type Candidate struct {
	Index   int
	X, Z    float64
	YawDeg  float64
	Covered []int
}
