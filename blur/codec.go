package blur

import "github.com/utkarsh5026/rowblur/raster"

// Codec loads and saves images for Run.
type Codec interface {
	Load(path string) (*raster.Image, error)
	Save(img *raster.Image, path string) error
}
