package geometry

// Collection is the geometric union of zero or more polygons.
type Collection struct {
	members []Polygon
}

// Union returns a Collection that reports containment as the logical OR
// of membership in any of polys. Degenerate polygons are skipped
// silently; callers are responsible for surfacing a warning if desired.
//
// Complexity: Contains is O(sum of member vertex counts).
func Union(polys []Polygon) *Collection {
	c := &Collection{members: make([]Polygon, 0, len(polys))}
	for _, p := range polys {
		if Valid(p) {
			c.members = append(c.members, p)
		}
	}
	return c
}

// Contains reports whether p lies inside any member polygon.
func (c *Collection) Contains(p Point) bool {
	for _, m := range c.members {
		if Contains(m, p) {
			return true
		}
	}
	return false
}

// Empty reports whether the union has no valid member polygons.
func (c *Collection) Empty() bool {
	return len(c.members) == 0
}
