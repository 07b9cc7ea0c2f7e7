package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestNewZeroed(t *testing.T) {
	s := New(4, 3)
	if s.Width != 4 || s.Height != 3 || s.Stride != 4 {
		t.Fatalf("New(4, 3) = %v", s)
	}
	for i, p := range s.Pix {
		if p != 0 {
			t.Fatalf("pixel %d = %#x; want 0", i, p)
		}
	}
}

func TestARGBChannels(t *testing.T) {
	p := ARGB(0x12, 0x34, 0x56, 0x78)
	if p != 0x12345678 {
		t.Fatalf("ARGB = %#x; want 0x12345678", p)
	}
	if r := RChannel(p); r != 0x34 {
		t.Fatalf("RChannel = %#x; want 0x34", r)
	}
}

func TestFillAndRow(t *testing.T) {
	s := New(5, 2)
	s.Fill(0xFF00FF00)
	for y := 0; y < s.Height; y++ {
		for x, p := range s.Row(y) {
			if p != 0xFF00FF00 {
				t.Fatalf("pixel (%d,%d) = %#x", x, y, p)
			}
		}
	}
}

func TestBlitClipping(t *testing.T) {
	src := New(4, 4)
	src.Fill(0xFFFFFFFF)

	tests := []struct {
		name   string
		dx, dy int
		filled int
	}{
		{"inside", 1, 1, 16},
		{"negative origin", -2, -2, 4},
		{"bottom right overflow", 6, 6, 4},
		{"fully outside", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := New(8, 8)
			dst.Blit(src, tt.dx, tt.dy)
			n := 0
			for _, p := range dst.Pix {
				if p != 0 {
					n++
				}
			}
			if n != tt.filled {
				t.Errorf("blit at (%d,%d) wrote %d pixels; want %d", tt.dx, tt.dy, n, tt.filled)
			}
		})
	}
}

func TestBlitRectSingleRow(t *testing.T) {
	src := New(4, 4)
	for y := 0; y < 4; y++ {
		row := src.Row(y)
		for x := range row {
			row[x] = uint32(y<<8 | x)
		}
	}
	dst := New(4, 4)
	dst.BlitRect(src, image.Rect(0, 2, 4, 3), 0, 0)
	for x := 0; x < 4; x++ {
		if got := dst.At(x, 0); got != uint32(2<<8|x) {
			t.Fatalf("dst(%d,0) = %#x; want %#x", x, got, 2<<8|x)
		}
	}
	for _, p := range dst.Row(1) {
		if p != 0 {
			t.Fatal("BlitRect wrote outside the destination row")
		}
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	s := New(2, 2)
	s.Fill(0x11111111)
	d := s.Duplicate()
	d.Set(0, 0, 0x22222222)
	if s.At(0, 0) != 0x11111111 {
		t.Fatal("Duplicate shares backing storage with the original")
	}
}

func TestFromImageToNRGBARoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(2, 1, color.NRGBA{R: 250, G: 251, B: 252, A: 253})

	s := FromImage(img)
	if s.Width != 3 || s.Height != 2 {
		t.Fatalf("FromImage size = %dx%d", s.Width, s.Height)
	}
	if got := s.At(0, 0); got != ARGB(4, 1, 2, 3) {
		t.Fatalf("pixel (0,0) = %#x; want %#x", got, ARGB(4, 1, 2, 3))
	}

	back := s.ToNRGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.NRGBAAt(x, y) != img.NRGBAAt(x, y) {
				t.Fatalf("round trip mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 128})
	img.SetGray(1, 0, color.Gray{Y: 0})

	s := FromImage(img)
	if r := RChannel(s.At(0, 0)); r != 128 {
		t.Fatalf("gray 128 converted to R=%d", r)
	}
	if r := RChannel(s.At(1, 0)); r != 0 {
		t.Fatalf("gray 0 converted to R=%d", r)
	}
}
