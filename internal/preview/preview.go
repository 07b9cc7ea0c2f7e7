package preview

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"text-to-stereogram/internal/raster"
)

type viewer struct {
	frame []byte
	w, h  int
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.frame)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w, v.h
}

// Show presents the surface in a software-rendered window and blocks
// until the window is closed.
func Show(s *raster.Surface) error {
	ebiten.SetWindowTitle("text-to-stereogram")
	ebiten.SetWindowSize(s.Width, s.Height)
	// The image is static; a low tick rate keeps the close-event
	// polling at roughly 100ms intervals.
	ebiten.SetTPS(10)
	v := &viewer{
		frame: s.ToNRGBA().Pix,
		w:     s.Width,
		h:     s.Height,
	}
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
