// Package geometry provides the 2D polygon primitives the placement
// pipeline builds on: point-in-polygon containment, Minkowski buffering
// (polygon inflation), and polygon union.
//
// What:
//
//   - Contains: ray-casting point-in-polygon test.
//   - Buffer: inflates a polygon by a fixed distance (arc-joined offset,
//     i.e. Minkowski sum with a disk).
//   - Union: geometric union of possibly-overlapping polygons, exposed as
//     a Region with a Contains query.
//
// Degenerate polygons (fewer than 3 vertices, or zero signed area) are
// rejected by Valid and are the caller's responsibility to skip; this
// package never panics on them.
//
// Complexity:
//   - Contains: O(n) in polygon vertex count.
//   - Buffer: O(n*k) where k is the arc segment count per convex corner.
//   - Union.Contains: O(sum of polygon vertex counts).
package geometry
