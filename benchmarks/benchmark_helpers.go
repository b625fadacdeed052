package benchmarks

import (
	"math/rand"
	"testing"

	"github.com/utkarsh5026/rowblur/blur"
	"github.com/utkarsh5026/rowblur/raster"
)

// imageConfig defines an input size for the blur benchmarks
type imageConfig struct {
	name          string
	width, height int
}

func getImageSizes() []imageConfig {
	return []imageConfig{
		{name: "Small_256x256", width: 256, height: 256},
		{name: "Wide_1920x64", width: 1920, height: 64},
		{name: "HD_1280x720", width: 1280, height: 720},
	}
}

// noiseImage fills an image with reproducible random pixels
func noiseImage(width, height int) *raster.Image {
	rng := rand.New(rand.NewSource(int64(width*height + 1)))
	img := raster.New(width, height)
	for y := range height {
		for x := range width {
			img.SetPixel(x, y, raster.RGB{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			})
		}
	}
	return img
}

// runBlur blurs src b.N times with the given options and reports pixel throughput
func runBlur(b *testing.B, src *raster.Image, opts ...blur.Option) {
	b.Helper()

	eng, err := blur.New(opts...)
	if err != nil {
		b.Fatalf("engine: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if _, _, err := eng.Blur(src); err != nil {
			b.Fatalf("blur: %v", err)
		}
	}
	b.StopTimer()

	pixels := float64(src.Width()*src.Height()) * float64(b.N)
	b.ReportMetric(pixels/b.Elapsed().Seconds()/1e6, "Mpx/s")
}
