package depth

import (
	"fmt"

	"text-to-stereogram/internal/imaging"
	"text-to-stereogram/internal/raster"
)

// LoadMap loads a depth-map image and converts it to the canvas
// format. Intensity encodes distance: 0 is the far plane, 255 the
// near plane. The image is used as-is; there is no resampling.
func LoadMap(path string) (*raster.Surface, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}
	return raster.FromImage(img), nil
}
