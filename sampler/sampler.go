package sampler

import (
	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/rng"
)

// Sample generates sample points inside roi, excluding any point that
// falls inside the union of obstacles, using a deterministic jittered
// grid scan. spacing is the grid step in meters; seed drives the jitter
// RNG.
//
// Determinism: identical (roi, obstacles, spacing, seed) produce
// byte-identical output, in acceptance order.
//
// Complexity: O((Δx/spacing) * (Δz/spacing)) grid cells visited, each
// O(len(roi) + sum(len(obstacle))) for containment tests.
func Sample(roi geometry.Polygon, obstacles []geometry.Polygon, spacing float64, seed int64) ([]Point, error) {
	if !geometry.Valid(roi) {
		return nil, ErrDegenerateROI
	}

	bounds := geometry.BoundingBox(roi)
	obstacleUnion := geometry.Union(obstacles)
	r := rng.New(seed)
	jitter := spacing * 0.25

	points := make([]Point, 0)
	idx := 0
	for x := bounds.MinX + spacing/2; x <= bounds.MaxX; x += spacing {
		for z := bounds.MinZ + spacing/2; z <= bounds.MaxZ; z += spacing {
			jx := x + rng.UniformJitter(r, jitter)
			jz := z + rng.UniformJitter(r, jitter)

			p := geometry.Point{X: jx, Z: jz}
			if !geometry.Contains(roi, p) {
				continue
			}
			if !obstacleUnion.Empty() && obstacleUnion.Contains(p) {
				continue
			}

			points = append(points, Point{Index: idx, X: jx, Z: jz})
			idx++
		}
	}
	return points, nil
}

// MarkCritical sets Critical=true on every point inside criticalPolygon.
// A nil or degenerate criticalPolygon marks nothing. Each point is
// written at most once; the field is treated as immutable thereafter.
//
// Complexity: O(len(points) * len(criticalPolygon)).
func MarkCritical(points []Point, criticalPolygon geometry.Polygon) {
	if !geometry.Valid(criticalPolygon) {
		return
	}
	for i := range points {
		if geometry.Contains(criticalPolygon, geometry.Point{X: points[i].X, Z: points[i].Z}) {
			points[i].Critical = true
		}
	}
}
