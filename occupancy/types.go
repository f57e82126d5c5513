package occupancy

// Grid is an immutable boolean occupancy grid covering a bounding box at
// a fixed cell size. Build it once via Build; never mutate Cells after
// construction.
type Grid struct {
	Cells      [][]bool
	MinX, MinZ float64
	CellSize   float64
	Rows, Cols int
}
