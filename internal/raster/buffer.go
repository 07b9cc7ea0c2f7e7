package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ARGB32 channel shifts within one packed pixel.
const (
	AShift = 24
	RShift = 16
	GShift = 8
	BShift = 0
)

// ARGB packs channels into one 32-bit pixel.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<AShift | uint32(r)<<RShift | uint32(g)<<GShift | uint32(b)<<BShift
}

// RChannel extracts the red component of a packed pixel.
func RChannel(p uint32) uint8 {
	return uint8(p >> RShift)
}

// Surface holds an ARGB32 raster as one flat slice for cache locality.
// Stride is counted in uint32s per row and is at least Width, so every
// row is a contiguous run of Width packed pixels.
type Surface struct {
	Width  int
	Height int
	Stride int
	Pix    []uint32
}

// New allocates a zeroed Width x Height surface with a tight stride.
func New(w, h int) *Surface {
	return &Surface{
		Width:  w,
		Height: h,
		Stride: w,
		Pix:    make([]uint32, w*h),
	}
}

// Row returns row y as a slice of Width packed pixels.
func (s *Surface) Row(y int) []uint32 {
	off := y * s.Stride
	return s.Pix[off : off+s.Width]
}

// At returns the packed pixel at (x, y).
func (s *Surface) At(x, y int) uint32 {
	return s.Pix[y*s.Stride+x]
}

// Set writes the packed pixel at (x, y).
func (s *Surface) Set(x, y int, p uint32) {
	s.Pix[y*s.Stride+x] = p
}

// Fill overwrites every pixel with p.
func (s *Surface) Fill(p uint32) {
	for y := 0; y < s.Height; y++ {
		row := s.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// Duplicate returns a deep copy of the surface.
func (s *Surface) Duplicate() *Surface {
	d := &Surface{
		Width:  s.Width,
		Height: s.Height,
		Stride: s.Stride,
		Pix:    make([]uint32, len(s.Pix)),
	}
	copy(d.Pix, s.Pix)
	return d
}

// Blit copies the whole of src onto s with its top-left at (dx, dy),
// clipped to both surfaces. No blending; pixels are copied raw.
func (s *Surface) Blit(src *Surface, dx, dy int) {
	s.BlitRect(src, image.Rect(0, 0, src.Width, src.Height), dx, dy)
}

// BlitRect copies the sr region of src onto s at (dx, dy), clipped.
func (s *Surface) BlitRect(src *Surface, sr image.Rectangle, dx, dy int) {
	sr = sr.Intersect(image.Rect(0, 0, src.Width, src.Height))
	if sr.Empty() {
		return
	}
	if dx < 0 {
		sr.Min.X -= dx
		dx = 0
	}
	if dy < 0 {
		sr.Min.Y -= dy
		dy = 0
	}
	w := sr.Dx()
	h := sr.Dy()
	if dx+w > s.Width {
		w = s.Width - dx
	}
	if dy+h > s.Height {
		h = s.Height - dy
	}
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		srow := src.Row(sr.Min.Y + y)
		drow := s.Row(dy + y)
		copy(drow[dx:dx+w], srow[sr.Min.X:sr.Min.X+w])
	}
}

// FromImage converts any decoded image to an ARGB32 surface.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	n, ok := img.(*image.NRGBA)
	if !ok || b.Min != image.Pt(0, 0) {
		n = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	}
	s := New(n.Rect.Dx(), n.Rect.Dy())
	for y := 0; y < s.Height; y++ {
		row := s.Row(y)
		off := y * n.Stride
		for x := 0; x < s.Width; x++ {
			i := off + x*4
			row[x] = ARGB(n.Pix[i+3], n.Pix[i], n.Pix[i+1], n.Pix[i+2])
		}
	}
	return s
}

// ToNRGBA unpacks the surface into an NRGBA image for encoding.
func (s *Surface) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		row := s.Row(y)
		off := y * img.Stride
		for x, p := range row {
			i := off + x*4
			img.Pix[i] = uint8(p >> RShift)
			img.Pix[i+1] = uint8(p >> GShift)
			img.Pix[i+2] = uint8(p >> BShift)
			img.Pix[i+3] = uint8(p >> AShift)
		}
	}
	return img
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface(%dx%d stride %d)", s.Width, s.Height, s.Stride)
}
