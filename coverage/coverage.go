package coverage

import (
	"math"

	"github.com/lnesto74/hyperspace/candidate"
	"github.com/lnesto74/hyperspace/occupancy"
	"github.com/lnesto74/hyperspace/sampler"
	"github.com/lnesto74/hyperspace/sensor"
)

// Build populates candidates[i].Covered in place for every candidate.
// Precondition: points is supplied in ascending Index order (as
// package sampler always produces); Build preserves that order rather
// than re-sorting, so Covered ends up ascending by sample index too.
// A sample p is covered by candidate c iff:
//
//  1. Range:  dist(c, p) <= rEff.
//  2. FOV:    model has partial HFOV and the smallest unsigned angular
//     difference between the bearing to p and c's yaw is <= HFOVDeg/2.
//  3. LOS:    losEnabled implies Blocked(c, p, grid) is false.
//
// grid may be nil when LOS is disabled or there are no obstacles.
//
// Complexity: O(len(candidates) * len(points)), multiplied by LOS ray
// step count per pair when losEnabled.
func Build(candidates []candidate.Candidate, points []sampler.Point, model sensor.Model, rEff float64, losEnabled bool, grid *occupancy.Grid) {
	for i := range candidates {
		c := &candidates[i]
		c.Covered = c.Covered[:0]

		for _, p := range points {
			dx := p.X - c.X
			dz := p.Z - c.Z
			dist := math.Hypot(dx, dz)

			if dist > rEff {
				continue
			}

			if !model.IsDome() {
				angleToP := math.Atan2(dz, dx) * 180 / math.Pi
				if SmallestAngleDiff(angleToP, c.YawDeg) > model.HFOVDeg/2 {
					continue
				}
			}

			if losEnabled && grid != nil {
				if occupancy.Blocked(c.X, c.Z, p.X, p.Z, grid) {
					continue
				}
			}

			c.Covered = append(c.Covered, p.Index)
		}
	}
}

// SmallestAngleDiff returns the smallest unsigned angular difference
// between a and b, in [0, 180], using modular arithmetic so wrap-around
// (e.g. 359 vs 1 degree) is handled correctly. Commutative and invariant
// under adding 360 to either argument.
func SmallestAngleDiff(a, b float64) float64 {
	diff := floorMod(a-b+180, 360) - 180
	return math.Abs(diff)
}

// floorMod is a mod that always returns a non-negative result for a
// positive modulus, unlike math.Mod which preserves the dividend's sign.
func floorMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}
