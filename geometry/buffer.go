package geometry

import "math"

// arcStepDeg bounds the angular step used to approximate rounded corners
// when buffering; smaller steps produce smoother (but larger) output
// polygons.
const arcStepDeg = 15.0

// Buffer inflates poly outward by distance (Minkowski sum with a disk of
// radius distance), rounding corners with an arc-joined offset. The
// result's interior is a superset of every point within distance of
// poly's interior, regardless of poly's original winding order.
//
// Complexity: O(n*k), k = arc segments per corner (bounded by arcStepDeg).
func Buffer(poly Polygon, distance float64) (Polygon, error) {
	if !Valid(poly) {
		return nil, ErrDegeneratePolygon
	}
	if distance < 0 {
		return nil, ErrNegativeDistance
	}
	if distance == 0 {
		out := make(Polygon, len(poly))
		copy(out, poly)
		return out, nil
	}

	ccw := orientCCW(poly)
	n := len(ccw)

	// Per-edge outward unit normal and offset endpoints.
	normals := make([][2]float64, n)
	offA := make([]Point, n)
	offB := make([]Point, n)
	for i := 0; i < n; i++ {
		a := ccw[i]
		b := ccw[(i+1)%n]
		nx, nz := outwardNormal(a, b)
		normals[i] = [2]float64{nx, nz}
		offA[i] = Point{a.X + nx*distance, a.Z + nz*distance}
		offB[i] = Point{b.X + nx*distance, b.Z + nz*distance}
	}

	result := make(Polygon, 0, n*4)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		center := ccw[i]
		result = append(result, arcPoints(center, normals[prev], normals[i], distance)...)
		result = append(result, offA[i], offB[i])
	}
	return result, nil
}

// orientCCW returns poly reordered counter-clockwise (copy; never mutates
// the input).
func orientCCW(poly Polygon) Polygon {
	out := make(Polygon, len(poly))
	copy(out, poly)
	if signedArea(poly) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// outwardNormal returns the unit normal pointing away from the interior
// of a CCW polygon for the directed edge a->b.
func outwardNormal(a, b Point) (float64, float64) {
	dx := b.X - a.X
	dz := b.Z - a.Z
	length := math.Hypot(dx, dz)
	if length == 0 {
		return 0, 0
	}
	return dz / length, -dx / length
}

// arcPoints returns the intermediate points (excluding both endpoints) of
// the CCW arc of radius d around center, sweeping from the direction of
// n1 to the direction of n2.
func arcPoints(center Point, n1, n2 [2]float64, d float64) []Point {
	a1 := math.Atan2(n1[1], n1[0])
	a2 := math.Atan2(n2[1], n2[0])
	sweep := math.Mod(a2-a1+2*math.Pi, 2*math.Pi)

	steps := int(math.Round(sweep / (arcStepDeg * math.Pi / 180)))
	if steps < 1 {
		steps = 1
	}

	pts := make([]Point, 0, steps-1)
	for k := 1; k < steps; k++ {
		angle := a1 + sweep*float64(k)/float64(steps)
		pts = append(pts, Point{
			X: center.X + d*math.Cos(angle),
			Z: center.Z + d*math.Sin(angle),
		})
	}
	return pts
}
