package occupancy

import (
	"math"

	"github.com/lnesto74/hyperspace/geometry"
)

// Build rasterizes the valid obstacle polygons into a boolean grid
// covering roi's bounding box at resolution cellSize. Cell (r, c) is
// marked true iff its center lies inside any valid obstacle. Degenerate
// obstacles are skipped silently.
//
// Complexity: O(rows * cols * sum(len(obstacle))).
func Build(roi geometry.Polygon, obstacles []geometry.Polygon, cellSize float64) *Grid {
	bounds := geometry.BoundingBox(roi)
	dx := bounds.MaxX - bounds.MinX
	dz := bounds.MaxZ - bounds.MinZ

	rows := int(math.Ceil(dz/cellSize)) + 1
	cols := int(math.Ceil(dx/cellSize)) + 1

	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}

	valid := make([]geometry.Polygon, 0, len(obstacles))
	for _, o := range obstacles {
		if geometry.Valid(o) {
			valid = append(valid, o)
		}
	}

	for r := 0; r < rows; r++ {
		cz := bounds.MinZ + (float64(r)+0.5)*cellSize
		for c := 0; c < cols; c++ {
			cx := bounds.MinX + (float64(c)+0.5)*cellSize
			p := geometry.Point{X: cx, Z: cz}
			for _, o := range valid {
				if geometry.Contains(o, p) {
					cells[r][c] = true
					break
				}
			}
		}
	}

	return &Grid{
		Cells:    cells,
		MinX:     bounds.MinX,
		MinZ:     bounds.MinZ,
		CellSize: cellSize,
		Rows:     rows,
		Cols:     cols,
	}
}

// cellAt returns the row, col indices for a floor-plane coordinate.
func (g *Grid) cellAt(x, z float64) (int, int) {
	c := int(math.Floor((x - g.MinX) / g.CellSize))
	r := int(math.Floor((z - g.MinZ) / g.CellSize))
	return r, c
}

// inBounds reports whether (r, c) is a valid cell index.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Occupied reports whether the cell containing (x, z) is marked occupied.
// Points outside the grid are treated as unoccupied.
func (g *Grid) Occupied(x, z float64) bool {
	r, c := g.cellAt(x, z)
	if !g.inBounds(r, c) {
		return false
	}
	return g.Cells[r][c]
}
