// pkg/physics/narrow.go
package physics

// Masked is anything that exposes a bounding box and an opacity mask
// aligned to it.
type Masked interface {
	Bounds() Rect
	Mask() *Mask
}

// MasksOverlap performs the narrow-phase collision test between two
// objects whose bounding boxes have already passed the broad phase. The
// masks are overlaid at the integer offset between the two bounding box
// origins and checked for any mutually opaque pixel. Objects carrying a
// transparent placeholder mask never collide.
func MasksOverlap(a, b Masked) bool {
	dx := b.Bounds().X - a.Bounds().X
	dy := b.Bounds().Y - a.Bounds().Y
	return a.Mask().Overlaps(b.Mask(), dx, dy)
}
