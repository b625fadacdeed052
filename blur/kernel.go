package blur

import (
	"image"

	"github.com/utkarsh5026/rowblur/raster"
)

// Radius is the half-width of the averaging window.
const Radius = 5

// Window returns the neighborhood of (x, y) in a width x height image:
// the square of side 2*Radius+1 centered on the pixel, clipped to the image.
// It always contains (x, y) itself.
func Window(width, height, x, y int) image.Rectangle {
	return image.Rect(x-Radius, y-Radius, x+Radius+1, y+Radius+1).
		Intersect(image.Rect(0, 0, width, height))
}

// WindowSize returns the number of pixels averaged for (x, y): 121 in the
// interior, 66 along an edge and 36 in a corner of a large enough image.
func WindowSize(width, height, x, y int) int {
	w := Window(width, height, x, y)
	return w.Dx() * w.Dy()
}

// Pixel computes the blurred value of (x, y): the mean of each channel over
// the window, truncated toward zero.
func Pixel(src *raster.Image, x, y int) raster.RGB {
	win := Window(src.Width(), src.Height(), x, y)

	var r, g, b int
	for j := win.Min.Y; j < win.Max.Y; j++ {
		row := src.Row(j)[3*win.Min.X : 3*win.Max.X]
		for i := 0; i < len(row); i += 3 {
			r += int(row[i])
			g += int(row[i+1])
			b += int(row[i+2])
		}
	}

	n := win.Dx() * win.Dy()
	return raster.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}
