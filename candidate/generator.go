package candidate

import (
	"github.com/lnesto74/hyperspace/geometry"
	"github.com/lnesto74/hyperspace/sensor"
)

// defaultYawStepDeg is used only when the caller passes a non-positive
// yawStepDeg; a caller's configured step is always honored when given.
const defaultYawStepDeg = 30.0

// Generate scans the ROI bounding box at spacing intervals (no jitter),
// skipping positions outside roi or inside the keepout-buffered obstacle
// union, and emits one Candidate per accepted position per yaw angle.
// seed is accepted for parity with the other generators' inputs but is
// unused: this scan is fully deterministic without any random draw.
//
// Complexity: O(grid cells * len(yaws) * (len(roi) + sum(len(obstacle)))).
func Generate(
	roi geometry.Polygon,
	obstacles []geometry.Polygon,
	spacing float64,
	keepout float64,
	model sensor.Model,
	yawStepDeg float64,
	seed int64,
) ([]Candidate, error) {
	_ = seed

	if !geometry.Valid(roi) {
		return nil, ErrDegenerateROI
	}

	bounds := geometry.BoundingBox(roi)

	buffered := make([]geometry.Polygon, 0, len(obstacles))
	for _, o := range obstacles {
		if !geometry.Valid(o) {
			continue
		}
		b, err := geometry.Buffer(o, keepout)
		if err != nil {
			continue
		}
		buffered = append(buffered, b)
	}
	forbidden := geometry.Union(buffered)

	yaws := yawSet(model, yawStepDeg)

	candidates := make([]Candidate, 0)
	idx := 0
	for x := bounds.MinX + spacing/2; x <= bounds.MaxX; x += spacing {
		for z := bounds.MinZ + spacing/2; z <= bounds.MaxZ; z += spacing {
			p := geometry.Point{X: x, Z: z}
			if !geometry.Contains(roi, p) {
				continue
			}
			if !forbidden.Empty() && forbidden.Contains(p) {
				continue
			}

			for _, yaw := range yaws {
				candidates = append(candidates, Candidate{Index: idx, X: x, Z: z, YawDeg: yaw})
				idx++
			}
		}
	}
	return candidates, nil
}

// yawSet returns the fixed yaw {0} for dome/360-degree sensors, or the
// step-spaced set covering [0, 360) otherwise.
func yawSet(model sensor.Model, yawStepDeg float64) []float64 {
	if model.IsDome() {
		return []float64{0}
	}
	step := yawStepDeg
	if step <= 0 {
		step = defaultYawStepDeg
	}
	yaws := make([]float64, 0, int(360/step)+1)
	for a := 0.0; a < 360; a += step {
		yaws = append(yaws, a)
	}
	return yaws
}
