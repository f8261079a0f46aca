// pkg/spatial/index.go

// Package spatial provides broad-phase collision culling structures. Both
// implementations are ephemeral: they are cleared and fully repopulated
// once per frame and never updated incrementally.
package spatial

import (
	"github.com/EngoEngine/ecs"

	"github.com/raythurman2386/draugrs-descent/pkg/physics"
)

// Item is anything a spatial index can hold: an identity plus an
// axis-aligned bounding box reflecting its current position.
type Item interface {
	ecs.Identifier
	Bounds() physics.Rect
}

// Index is the broad-phase contract shared by UniformGrid and QuadTree.
// Results from Retrieve may contain false positives (items whose actual
// rectangles do not overlap the query item) but never omit a true
// positive, and never contain duplicates or the query item itself.
type Index interface {
	// Clear discards all held items. Idempotent; called once per frame
	// before repopulation.
	Clear()

	// Insert registers the item at its current bounding box. Inserting
	// the same item twice in one frame is tolerated.
	Insert(item Item)

	// Retrieve returns every inserted item whose bucket placement could
	// overlap the given item's bounding box, excluding the item itself.
	Retrieve(item Item) []Item
}

// resultSet accumulates broad-phase candidates, deduplicating by entity
// ID and excluding the query item.
type resultSet struct {
	selfID uint64
	seen   map[uint64]struct{}
	items  []Item
}

func newResultSet(self Item) *resultSet {
	return &resultSet{
		selfID: self.ID(),
		seen:   make(map[uint64]struct{}),
	}
}

func (s *resultSet) add(item Item) {
	id := item.ID()
	if id == s.selfID {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.items = append(s.items, item)
}
