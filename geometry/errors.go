package geometry

import "errors"

// Sentinel errors for geometry operations.
var (
	// ErrDegeneratePolygon indicates a polygon with fewer than 3 vertices
	// or zero signed area.
	ErrDegeneratePolygon = errors.New("geometry: degenerate polygon")
	// ErrNegativeDistance indicates Buffer was called with distance < 0.
	ErrNegativeDistance = errors.New("geometry: buffer distance must be >= 0")
)
