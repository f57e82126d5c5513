package sensor

import "math"

// Model is an immutable LiDAR sensor model.
type Model struct {
	// HFOVDeg is the horizontal field of view in degrees, 0 < HFOVDeg <= 360.
	HFOVDeg float64
	// VFOVDeg is the vertical field of view in degrees.
	VFOVDeg float64
	// RangeM is the maximum sensing range in meters.
	RangeM float64
	// Dome indicates 360-degree horizontal scanning.
	Dome bool
}

// IsDome reports whether the model scans the full horizontal plane,
// either because Dome is set or HFOVDeg already covers 360 degrees.
func (m Model) IsDome() bool {
	return m.Dome || m.HFOVDeg >= 360
}

// EffectiveRadius derives r_eff, the effective floor-coverage radius, from
// mountHeight (meters above the floor):
//
//	IsDome()  => r_eff = 0.9 * RangeM
//	otherwise => r_eff = min(RangeM, mountHeight * tan(VFOVDeg/2))
//
// Complexity: O(1).
func (m Model) EffectiveRadius(mountHeight float64) float64 {
	if m.IsDome() {
		return m.RangeM * 0.9
	}
	alpha := (m.VFOVDeg / 2) * math.Pi / 180
	rVFOV := mountHeight * math.Tan(alpha)
	return math.Min(m.RangeM, rVFOV)
}
