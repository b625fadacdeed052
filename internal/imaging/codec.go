// Package imaging reads and writes raster images on disk.
//
// Decoding sniffs the file header and accepts BMP, PNG, JPEG and WebP.
// Encoding picks the format from the output file extension: .bmp, .png,
// .jpg or .jpeg. WebP can be read but not written.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/utkarsh5026/rowblur/raster"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is the quality used when saving .jpg/.jpeg files.
const JPEGQuality = 95

// ErrUnsupportedFormat is returned by Save for an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Codec loads and saves images using the file system.
type Codec struct{}

// Load implements blur.Codec.
func (Codec) Load(path string) (*raster.Image, error) { return Load(path) }

// Save implements blur.Codec.
func (Codec) Save(img *raster.Image, path string) error { return Save(img, path) }

// Load decodes the image at path.
func Load(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	debugLog("decoded %s as %s, %dx%d", path, format, img.Bounds().Dx(), img.Bounds().Dy())
	return raster.FromImage(img), nil
}

// Save encodes img to path, choosing the format from the extension.
// The image is written to a temporary file in the same directory and renamed
// into place, so path never holds a partially written image.
func Save(img *raster.Image, path string) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

type encoder func(w io.Writer, img image.Image) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		return bmp.Encode, nil
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
