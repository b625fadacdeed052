package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestImage_PixelAccess(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		m := New(4, 3)
		m.SetPixel(3, 2, RGB{1, 2, 3})
		if got := m.Pixel(3, 2); got != (RGB{1, 2, 3}) {
			t.Errorf("expected {1 2 3}, got %v", got)
		}
		if got := m.Pixel(0, 0); got != (RGB{}) {
			t.Errorf("new image should be black, got %v", got)
		}
	})

	t.Run("row slices are contiguous", func(t *testing.T) {
		m := Filled(2, 2, RGB{9, 8, 7})
		m.SetPixel(1, 1, RGB{1, 2, 3})
		row := m.Row(1)
		if len(row) != 6 {
			t.Fatalf("expected 6 bytes, got %d", len(row))
		}
		if row[3] != 1 || row[4] != 2 || row[5] != 3 {
			t.Errorf("unexpected row bytes %v", row)
		}
	})

	t.Run("out of bounds panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		New(2, 2).Pixel(2, 0)
	})
}

func TestImage_Conversions(t *testing.T) {
	t.Run("from NRGBA drops alpha", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(10, 10, 12, 11))
		src.Set(10, 10, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		src.Set(11, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

		m := FromImage(src)
		if m.Width() != 2 || m.Height() != 1 {
			t.Fatalf("expected 2x1, got %dx%d", m.Width(), m.Height())
		}
		if got := m.Pixel(0, 0); got != (RGB{200, 100, 50}) {
			t.Errorf("unexpected pixel %v", got)
		}
		if got := m.Pixel(1, 0); got != (RGB{1, 2, 3}) {
			t.Errorf("unexpected pixel %v", got)
		}
	})

	t.Run("round trip through RGBA", func(t *testing.T) {
		m := New(3, 2)
		m.SetPixel(0, 0, RGB{255, 0, 0})
		m.SetPixel(2, 1, RGB{0, 0, 255})

		back := FromImage(m.ToRGBA())
		if !back.Equal(m) {
			t.Error("image changed across RGBA round trip")
		}
	})

	t.Run("clone is independent", func(t *testing.T) {
		m := Filled(2, 2, RGB{255, 255, 255})
		c := m.Clone()
		c.SetPixel(0, 0, RGB{})
		if m.Pixel(0, 0) != (RGB{255, 255, 255}) {
			t.Error("clone shares storage with the original")
		}
		if m.Equal(c) {
			t.Error("images should differ after modifying the clone")
		}
	})
}
