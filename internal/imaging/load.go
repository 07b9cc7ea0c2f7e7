package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// Load decodes a PNG, JPEG, GIF, BMP, WebP or TGA image file.
func Load(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: open %s: %w", path, err)
	}

	// The tga package registers itself with an empty magic string, so
	// image.Decode would hand every file to it. Try each decoder in
	// turn instead, TGA last since it has no signature to check.
	decoders := []func(io.Reader) (image.Image, error){png.Decode, jpeg.Decode, gif.Decode, bmp.Decode, webp.Decode, tga.Decode}
	for _, dec := range decoders {
		if img, err := dec(bytes.NewReader(data)); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("imaging: decode %s: unrecognized or invalid image", path)
}
