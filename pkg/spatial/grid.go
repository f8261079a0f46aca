// pkg/spatial/grid.go
package spatial

import (
	"fmt"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// cellKey identifies one grid cell by its integer cell coordinates.
type cellKey struct {
	X int
	Y int
}

// UniformGrid is a spatial hash with fixed-size square cells. An item
// spanning several cells is registered in every one of them; retrieval
// unions the covered cells and deduplicates by item identity.
type UniformGrid struct {
	cellSize int
	cells    map[cellKey][]Item
}

// NewUniformGrid creates a grid with the given cell edge length. The cell
// size is fixed for the life of the grid; a non-positive value is a
// programmer error and fails fast.
func NewUniformGrid(cellSize int) (*UniformGrid, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("uniform grid cell size must be positive, got %d", cellSize)
	}
	return &UniformGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]Item),
	}, nil
}

// Clear discards all cell contents.
func (g *UniformGrid) Clear() {
	g.cells = make(map[cellKey][]Item)
}

// Insert registers the item in every cell its bounding box covers.
func (g *UniformGrid) Insert(item Item) {
	g.eachCoveredCell(item.Bounds(), func(key cellKey) {
		g.cells[key] = append(g.cells[key], item)
	})
}

// Retrieve returns all items registered in any cell covered by the given
// item's bounding box, excluding the item itself, without duplicates.
func (g *UniformGrid) Retrieve(item Item) []Item {
	results := newResultSet(item)
	g.eachCoveredCell(item.Bounds(), func(key cellKey) {
		for _, other := range g.cells[key] {
			results.add(other)
		}
	})
	return results.items
}

// eachCoveredCell visits the rectangle of cell keys spanned by the
// bounding box corners, inclusive on both ends.
func (g *UniformGrid) eachCoveredCell(bounds physics.Rect, visit func(cellKey)) {
	x0 := floorDiv(bounds.X, g.cellSize)
	y0 := floorDiv(bounds.Y, g.cellSize)
	x1 := floorDiv(bounds.Right(), g.cellSize)
	y1 := floorDiv(bounds.Bottom(), g.cellSize)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			visit(cellKey{X: x, Y: y})
		}
	}
}

// floorDiv divides rounding toward negative infinity, so cell keys stay
// consistent for objects at negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
