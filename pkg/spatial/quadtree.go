// pkg/spatial/quadtree.go
package spatial

import (
	"fmt"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// noQuadrant is returned by childIndex when a rect does not fit entirely
// inside any single child quadrant.
const noQuadrant = -1

// QuadTree recursively subdivides its bounding region into four equal
// quadrants once a node's occupancy exceeds maxObjects, up to maxLevels
// deep. An item that straddles a quadrant boundary stays at the node that
// owns it rather than being split or duplicated; an item larger than the
// whole region stays pinned to the root as a correctness fallback.
type QuadTree struct {
	bounds     physics.Rect
	maxObjects int
	maxLevels  int
	root       *treeNode
}

// NewQuadTree creates a quadtree over the given region. Non-positive node
// capacity, depth limit, or region dimensions are programmer errors and
// fail fast.
func NewQuadTree(bounds physics.Rect, maxObjects, maxLevels int) (*QuadTree, error) {
	if maxObjects <= 0 {
		return nil, fmt.Errorf("quadtree max objects per node must be positive, got %d", maxObjects)
	}
	if maxLevels <= 0 {
		return nil, fmt.Errorf("quadtree max levels must be positive, got %d", maxLevels)
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return nil, fmt.Errorf("quadtree bounds must have positive area, got %dx%d",
			bounds.Width, bounds.Height)
	}
	t := &QuadTree{
		bounds:     bounds,
		maxObjects: maxObjects,
		maxLevels:  maxLevels,
	}
	t.Clear()
	return t, nil
}

// Clear discards all held items by replacing the root node.
func (t *QuadTree) Clear() {
	t.root = &treeNode{
		tree:   t,
		level:  0,
		bounds: t.bounds,
	}
}

// Insert registers the item at its current bounding box.
func (t *QuadTree) Insert(item Item) {
	t.root.insert(item)
}

// Retrieve returns every inserted item whose owning node could overlap
// the given item's bounding box, excluding the item itself.
func (t *QuadTree) Retrieve(item Item) []Item {
	results := newResultSet(item)
	t.root.retrieve(item.Bounds(), results)
	return results.items
}

// treeNode is one quadrant of the tree. Children are ordered NW, NE, SW,
// SE; a node either has all four children or none.
type treeNode struct {
	tree     *QuadTree
	level    int
	bounds   physics.Rect
	objects  []Item
	children [4]*treeNode
}

func (n *treeNode) divided() bool {
	return n.children[0] != nil
}

// childIndex classifies a rect into the single child quadrant that fully
// contains it, or noQuadrant when it straddles a midline. Boundary ties
// keep the rect at this node.
func (n *treeNode) childIndex(bounds physics.Rect) int {
	midX := n.bounds.X + n.bounds.Width/2
	midY := n.bounds.Y + n.bounds.Height/2

	west := bounds.X >= n.bounds.X && bounds.Right() < midX
	east := bounds.X >= midX && bounds.Right() <= n.bounds.Right()
	north := bounds.Y >= n.bounds.Y && bounds.Bottom() < midY
	south := bounds.Y >= midY && bounds.Bottom() <= n.bounds.Bottom()

	switch {
	case north && west:
		return 0
	case north && east:
		return 1
	case south && west:
		return 2
	case south && east:
		return 3
	}
	return noQuadrant
}

func (n *treeNode) insert(item Item) {
	if n.divided() {
		if i := n.childIndex(item.Bounds()); i != noQuadrant {
			n.children[i].insert(item)
			return
		}
	}

	n.objects = append(n.objects, item)

	if len(n.objects) > n.tree.maxObjects && n.level < n.tree.maxLevels && !n.divided() {
		n.subdivide()
	}
}

// subdivide creates the four child quadrants and moves down every held
// object that fits entirely inside one of them.
func (n *treeNode) subdivide() {
	halfW := n.bounds.Width / 2
	halfH := n.bounds.Height / 2
	x := n.bounds.X
	y := n.bounds.Y

	quadrants := [4]physics.Rect{
		{X: x, Y: y, Width: halfW, Height: halfH},
		{X: x + halfW, Y: y, Width: n.bounds.Width - halfW, Height: halfH},
		{X: x, Y: y + halfH, Width: halfW, Height: n.bounds.Height - halfH},
		{X: x + halfW, Y: y + halfH, Width: n.bounds.Width - halfW, Height: n.bounds.Height - halfH},
	}
	for i, q := range quadrants {
		n.children[i] = &treeNode{
			tree:   n.tree,
			level:  n.level + 1,
			bounds: q,
		}
	}

	kept := n.objects[:0]
	for _, obj := range n.objects {
		if i := n.childIndex(obj.Bounds()); i != noQuadrant {
			n.children[i].insert(obj)
		} else {
			kept = append(kept, obj)
		}
	}
	n.objects = kept
}

func (n *treeNode) retrieve(bounds physics.Rect, results *resultSet) {
	// Objects held at this node may straddle any child boundary, so they
	// are always candidates.
	for _, obj := range n.objects {
		results.add(obj)
	}

	if !n.divided() {
		return
	}
	for _, child := range n.children {
		if child.bounds.Intersects(bounds) {
			child.retrieve(bounds, results)
		}
	}
}
