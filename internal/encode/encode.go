package encode

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"text-to-stereogram/internal/raster"
)

// Save writes the surface to path. The encoder is chosen by
// extension: .webp uses lossless WebP, everything else PNG.
func Save(s *raster.Surface, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	defer f.Close()

	img := s.ToNRGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("encode: webp %s: %w", path, err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encode: png %s: %w", path, err)
		}
	}
	return nil
}
