// pkg/physics/mask_test.go
package physics

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestNewMask(t *testing.T) {
	t.Run("filled", func(t *testing.T) {
		m := NewMask(4, 3, true)

		if m.Width() != 4 || m.Height() != 3 {
			t.Errorf("mask size = %dx%d, expected 4x3", m.Width(), m.Height())
		}
		if m.Empty() {
			t.Error("filled mask reported empty")
		}
		if !m.At(3, 2) {
			t.Error("expected pixel (3,2) opaque in filled mask")
		}
	})

	t.Run("transparent", func(t *testing.T) {
		m := NewMask(4, 3, false)

		if !m.Empty() {
			t.Error("unfilled mask reported non-empty")
		}
	})

	t.Run("degenerate_size_yields_placeholder", func(t *testing.T) {
		m := NewMask(0, -5, true)

		if m.Width() != 1 || m.Height() != 1 || !m.Empty() {
			t.Errorf("expected 1x1 transparent placeholder, got %dx%d empty=%v",
				m.Width(), m.Height(), m.Empty())
		}
	})
}

func TestMaskFromImage(t *testing.T) {
	t.Run("nil_image_yields_placeholder", func(t *testing.T) {
		m := MaskFromImage(nil, DefaultAlphaThreshold)

		if m.Width() != 1 || m.Height() != 1 || !m.Empty() {
			t.Error("expected 1x1 transparent placeholder for nil image")
		}
	})

	t.Run("alpha_threshold", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
		img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 10})

		m := MaskFromImage(img, DefaultAlphaThreshold)

		if !m.At(0, 0) {
			t.Error("opaque pixel not set in mask")
		}
		if m.At(1, 0) {
			t.Error("near-transparent pixel set in mask")
		}
	})
}

func TestMask_At_OutOfRange(t *testing.T) {
	m := NewMask(2, 2, true)

	if m.At(-1, 0) || m.At(0, -1) || m.At(2, 0) || m.At(0, 2) {
		t.Error("out-of-range pixels must read as transparent")
	}
}

func TestMask_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        *Mask
		b        *Mask
		dx, dy   int
		expected bool
	}{
		{
			name:     "full_masks_same_position",
			a:        NewMask(4, 4, true),
			b:        NewMask(4, 4, true),
			expected: true,
		},
		{
			name:     "full_masks_disjoint_offset",
			a:        NewMask(4, 4, true),
			b:        NewMask(4, 4, true),
			dx:       4,
			dy:       0,
			expected: false,
		},
		{
			name:     "one_pixel_of_overlap",
			a:        NewMask(4, 4, true),
			b:        NewMask(4, 4, true),
			dx:       3,
			dy:       3,
			expected: true,
		},
		{
			name:     "negative_offset_overlap",
			a:        NewMask(4, 4, true),
			b:        NewMask(4, 4, true),
			dx:       -3,
			dy:       -3,
			expected: true,
		},
		{
			name:     "placeholder_never_overlaps",
			a:        PlaceholderMask(),
			b:        NewMask(4, 4, true),
			expected: false,
		},
		{
			name:     "nil_other",
			a:        NewMask(4, 4, true),
			b:        nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b, tt.dx, tt.dy); got != tt.expected {
				t.Errorf("Mask.Overlaps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMask_Overlaps_DisjointOpaqueRegions(t *testing.T) {
	// Two masks whose rectangles overlap but whose opaque pixels do not.
	a := NewMask(4, 4, false)
	a.Set(0, 0, true)
	b := NewMask(4, 4, false)
	b.Set(3, 3, true)

	if a.Overlaps(b, 0, 0) {
		t.Error("masks with disjoint opaque pixels must not overlap")
	}
	if !a.Overlaps(b, -3, -3) {
		t.Error("offset aligning the opaque pixels must overlap")
	}
}

func TestMask_Overlaps_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		a := randomMask(rng, 1+rng.Intn(8), 1+rng.Intn(8))
		b := randomMask(rng, 1+rng.Intn(8), 1+rng.Intn(8))
		dx := rng.Intn(17) - 8
		dy := rng.Intn(17) - 8

		if a.Overlaps(b, dx, dy) != b.Overlaps(a, -dx, -dy) {
			t.Fatalf("overlap asymmetry at offset (%d,%d)", dx, dy)
		}
	}
}

func TestMasksOverlap(t *testing.T) {
	a := &fakeMasked{bounds: NewRect(0, 0, 4, 4), mask: NewMask(4, 4, true)}
	b := &fakeMasked{bounds: NewRect(3, 3, 4, 4), mask: NewMask(4, 4, true)}
	c := &fakeMasked{bounds: NewRect(10, 10, 4, 4), mask: NewMask(4, 4, true)}

	if !MasksOverlap(a, b) {
		t.Error("expected overlapping corner pixel to collide")
	}
	if MasksOverlap(a, c) {
		t.Error("expected distant objects not to collide")
	}
	if MasksOverlap(a, b) != MasksOverlap(b, a) {
		t.Error("MasksOverlap must be symmetric")
	}
}

type fakeMasked struct {
	bounds Rect
	mask   *Mask
}

func (f *fakeMasked) Bounds() Rect { return f.bounds }
func (f *fakeMasked) Mask() *Mask  { return f.mask }

func randomMask(rng *rand.Rand, w, h int) *Mask {
	m := NewMask(w, h, false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Intn(2) == 0 {
				m.Set(x, y, true)
			}
		}
	}
	return m
}
