// Package raster holds the 8-bit RGB image buffer the blur engine reads
// from and writes into.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// RGB is one pixel, three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBA converts the pixel to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Image is a packed, row-major RGB raster. Pixel (x, y) occupies
// Pix[3*(y*Width+x) : 3*(y*Width+x)+3].
//
// Image implements image.Image so it can be handed to any encoder.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// New allocates a black width x height image.
func New(width, height int) *Image {
	if width < 0 || height < 0 {
		panic("raster: negative image size")
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, 3*width*height),
	}
}

// Filled allocates a width x height image where every pixel is c.
func Filled(width, height int, c RGB) *Image {
	m := New(width, height)
	for i := 0; i < len(m.pix); i += 3 {
		m.pix[i], m.pix[i+1], m.pix[i+2] = c.R, c.G, c.B
	}
	return m
}

// FromImage copies any image.Image into a new raster. The alpha channel is
// discarded and 16-bit channels keep their high byte.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	m := New(b.Dx(), b.Dy())

	// Fast path for the common decoder outputs.
	if rgba, ok := src.(*image.RGBA); ok {
		for y := range m.height {
			row := rgba.Pix[rgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := range m.width {
				m.SetPixel(x, y, RGB{row[4*x], row[4*x+1], row[4*x+2]})
			}
		}
		return m
	}

	for y := range m.height {
		for x := range m.width {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.SetPixel(x, y, RGB{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
	return m
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Pixel returns the pixel at (x, y). Coordinates must be inside the image.
func (m *Image) Pixel(x, y int) RGB {
	i := m.offset(x, y)
	return RGB{m.pix[i], m.pix[i+1], m.pix[i+2]}
}

// SetPixel stores c at (x, y). Coordinates must be inside the image.
func (m *Image) SetPixel(x, y int, c RGB) {
	i := m.offset(x, y)
	m.pix[i], m.pix[i+1], m.pix[i+2] = c.R, c.G, c.B
}

// Row returns the packed bytes of row y. The slice aliases the image.
func (m *Image) Row(y int) []uint8 {
	start := 3 * y * m.width
	return m.pix[start : start+3*m.width : start+3*m.width]
}

// SameSize reports whether o has the same dimensions.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// Equal reports whether both images have the same size and pixels.
func (m *Image) Equal(o *Image) bool {
	return m.SameSize(o) && bytes.Equal(m.pix, o.pix)
}

// Clone returns a deep copy.
func (m *Image) Clone() *Image {
	return &Image{
		width:  m.width,
		height: m.height,
		pix:    append([]uint8(nil), m.pix...),
	}
}

// ToRGBA converts the raster to an opaque *image.RGBA.
func (m *Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(m.Bounds())
	draw.Draw(dst, dst.Bounds(), m, image.Point{}, draw.Src)
	return dst
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At implements image.Image.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return color.RGBA{}
	}
	return m.Pixel(x, y).RGBA()
}

func (m *Image) offset(x, y int) int {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		panic("raster: pixel out of bounds")
	}
	return 3 * (y*m.width + x)
}
