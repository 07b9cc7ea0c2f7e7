package depth

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"text-to-stereogram/internal/raster"
)

// LoadFont reads and parses a TTF/OTF font file.
func LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("depth: read font %s: %w", path, err)
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("depth: parse font %s: %w", path, err)
	}
	return fnt, nil
}

// RenderText rasterizes text as a solid silhouette at gray level
// value against a zero background. The synthesizer reads the result
// through its R channel, so value is the depth the glyphs sit at
// above the far plane.
func RenderText(fnt *opentype.Font, size float64, text string, value uint8) (*raster.Surface, error) {
	if text == "" {
		return nil, fmt.Errorf("depth: empty text")
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("depth: create face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("depth: text %q rasterizes to an empty surface", text)
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)

	// Solid rendering: threshold the coverage mask so every pixel is
	// either the depth value or background, no intermediate levels.
	s := raster.New(w, h)
	glyph := raster.ARGB(0xFF, value, value, value)
	for y := 0; y < h; y++ {
		row := s.Row(y)
		off := y * mask.Stride
		for x := 0; x < w; x++ {
			if mask.Pix[off+x] >= 0x80 {
				row[x] = glyph
			}
		}
	}
	return s, nil
}
