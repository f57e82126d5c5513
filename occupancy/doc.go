// Package occupancy rasterizes obstacle polygons into a boolean grid and
// answers line-of-sight queries by ray marching across it.
//
// What:
//   - Grid: a read-only boolean occupancy grid over the ROI's bounding
//     box, built once. Cell (r, c) is true iff its center lies inside any
//     valid obstacle polygon.
//   - Blocked: marches a segment from a sensor position to a sample
//     position in half-cell steps, returning true the moment an
//     intermediate step lands on an occupied cell. Endpoints are
//     intentionally excluded so sensor and sample locations are never
//     self-occluding.
//
// Ownership: Grid is built once by the pipeline and borrowed (read-only,
// by pointer) into package coverage; it is never mutated after Build.
package occupancy
