// pkg/physics/mask.go
package physics

import "image"

// DefaultAlphaThreshold is the alpha value above which a pixel counts as
// opaque when building a mask from an image.
const DefaultAlphaThreshold = 127

// Mask is a per-pixel opacity bitmap used for narrow-phase collision
// tests. Pixels are stored row-major; a set pixel is opaque.
type Mask struct {
	width  int
	height int
	pixels []bool
	count  int
}

// NewMask creates a mask of the given size. When filled is true every
// pixel starts opaque. Non-positive dimensions yield the 1x1 transparent
// placeholder.
func NewMask(width, height int, filled bool) *Mask {
	if width <= 0 || height <= 0 {
		return PlaceholderMask()
	}
	m := &Mask{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
	if filled {
		for i := range m.pixels {
			m.pixels[i] = true
		}
		m.count = width * height
	}
	return m
}

// PlaceholderMask returns a 1x1 fully-transparent mask. It stands in for
// entities whose visual representation failed to load, so they never
// collide instead of crashing the narrow phase.
func PlaceholderMask() *Mask {
	return &Mask{width: 1, height: 1, pixels: make([]bool, 1)}
}

// MaskFromImage builds a mask from an image's alpha channel. Pixels with
// alpha above threshold are opaque. A nil image yields the placeholder.
func MaskFromImage(img image.Image, threshold uint8) *Mask {
	if img == nil {
		return PlaceholderMask()
	}
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy(), false)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// At reports whether the pixel at (x, y) is opaque. Out-of-range
// coordinates are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.pixels[y*m.width+x]
}

// Set marks the pixel at (x, y) opaque or transparent. Out-of-range
// coordinates are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	i := y*m.width + x
	if m.pixels[i] == opaque {
		return
	}
	m.pixels[i] = opaque
	if opaque {
		m.count++
	} else {
		m.count--
	}
}

// Empty reports whether the mask has no opaque pixels.
func (m *Mask) Empty() bool {
	return m.count == 0
}

// Overlaps reports whether this mask and other share any mutually opaque
// pixel when other is overlaid at integer offset (dx, dy) relative to
// this mask's origin. The test is symmetric: a.Overlaps(b, dx, dy) equals
// b.Overlaps(a, -dx, -dy).
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	if other == nil || m.Empty() || other.Empty() {
		return false
	}

	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.width, dx+other.width)
	y1 := min(m.height, dy+other.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.pixels[y*m.width+x] && other.pixels[(y-dy)*other.width+(x-dx)] {
				return true
			}
		}
	}
	return false
}
