package stereogram

import (
	"fmt"
	"image"
	"math/rand"

	"text-to-stereogram/internal/raster"
)

// MaxTileDim is the largest tile edge the gradient encoding can
// address: two 8-bit channels per axis.
const MaxTileDim = 65536

// Params configures one stereogram render.
type Params struct {
	Width  int
	Height int
	// Tile is the seed pattern; it needs some texture for the stereo
	// effect to work.
	Tile *raster.Surface
	// Depth is read through its R channel only: 0 far, 255 near.
	Depth *raster.Surface
	// CrossEyed swaps the shorten/lengthen branches for crossed
	// viewing instead of the default wall-eyed (parallel) viewing.
	CrossEyed bool
	// Divisor bounds how much the pattern length may change: going
	// from depth 0 to depth 255 changes it by 255/256 of width/Divisor,
	// so with the default of 2 it runs from the tile width down to
	// about half of it.
	Divisor float64
}

// Renderer synthesizes a two-pass autostereogram. It is strictly
// single-threaded; one render produces byte-identical output for
// identical inputs.
type Renderer struct {
	canvas *raster.Surface
	tile   *raster.Surface
	depth  *raster.Surface
	cross  bool
	div    float64
	rng    *rand.Rand
}

// New validates the geometry and prepares a renderer.
func New(p Params) (*Renderer, error) {
	if p.Tile == nil {
		return nil, fmt.Errorf("stereogram: no tile")
	}
	if p.Depth == nil {
		return nil, fmt.Errorf("stereogram: no depth source")
	}
	if p.Tile.Width > MaxTileDim || p.Tile.Height > MaxTileDim {
		return nil, fmt.Errorf("stereogram: tile image too big; max. dimensions %d*%d", MaxTileDim, MaxTileDim)
	}
	if p.Width < p.Tile.Width || p.Height < p.Tile.Height {
		return nil, fmt.Errorf("stereogram: image must be at least as big as the tile in both dimensions")
	}
	if p.Divisor <= 1.0 {
		return nil, fmt.Errorf("stereogram: pattern length divisor must be greater than 1.0")
	}
	return &Renderer{
		canvas: raster.New(p.Width, p.Height),
		tile:   p.Tile,
		depth:  p.Depth,
		cross:  p.CrossEyed,
		div:    p.Divisor,
	}, nil
}

// MinWidth reports the narrowest canvas that leaves one full tile
// width either side of the depth raster. Anything narrower still
// renders, with degraded edge quality.
func (r *Renderer) MinWidth() int {
	return r.tile.Width*2 + r.depth.Width
}

// Render runs both synthesis passes and returns the final canvas.
//
// Pass 1 renders the stereogram with a coordinate-gradient tile, so
// that afterwards every output column records which tile coordinate
// landed there. Pass 2 uses that offset map, row by row, to build a
// pre-scrambled tile whose pixels reassemble into the original tile
// inside the central strip of the final image.
func (r *Renderer) Render() *raster.Surface {
	gradient := raster.GradientTile(r.tile.Width, r.tile.Height)
	r.drawFull(gradient)

	// Pass 2 must read the offset map while overwriting the canvas,
	// so keep it in its own buffer for the whole pass.
	offsets := r.canvas.Duplicate()
	r.canvas.Fill(raster.ARGB(0xFF, 0, 0, 0))

	tw, th := r.tile.Width, r.tile.Height
	base := r.canvas.Width/2 - tw/2
	rearr := r.tile.Duplicate()
	for row := 0; row < r.canvas.Height; row++ {
		// Sample offsets from the tile-width strip in the centre of
		// the offset-map row. Each sampled pixel names the tile
		// coordinate that ends up at that point, so copying tile
		// pixels to those coordinates builds a tile that lines up
		// with the original image in the centre.
		rearr.Blit(r.tile, 0, 0)
		srcRow := r.tile.Row(row % th)
		offRow := offsets.Row(row)
		for x := 0; x < tw; x++ {
			xo, yo := raster.DecodeCoord(offRow[base+x])
			rearr.Set(xo, yo, srcRow[x])
		}
		r.drawRow(rearr, row, row == 0)
	}
	return r.canvas
}

// drawFull seeds the whole canvas and synthesizes every row (pass 1).
func (r *Renderer) drawFull(src *raster.Surface) {
	r.rng = rand.New(rand.NewSource(42))
	r.blitDepth()
	for y := 0; y < r.canvas.Height; y += src.Height {
		r.canvas.Blit(src, 0, y)
	}
	c := r.coeff(src.Width)
	for y := 0; y < r.canvas.Height; y++ {
		r.synthesizeRow(src, y, c)
	}
}

// drawRow seeds and synthesizes a single canvas row (pass 2). The
// init row reseeds the generator and re-blits the depth raster.
func (r *Renderer) drawRow(src *raster.Surface, row int, init bool) {
	if init {
		r.rng = rand.New(rand.NewSource(42))
		r.blitDepth()
	}
	i := row % src.Height
	r.canvas.BlitRect(src, image.Rect(0, i, src.Width, i+1), 0, row)
	r.synthesizeRow(src, row, r.coeff(src.Width))
}

// coeff converts one step of the 0..255 depth range into pixels of
// pattern length change, while limiting how short the pattern can get
// as a proportion of the tile width.
func (r *Renderer) coeff(tw int) float64 {
	return (float64(tw) / r.div) / 256.0
}

// blitDepth places the depth raster centred on the canvas, shifted
// right by half a tile: the leftmost tile width is the seed region,
// and the viewer fuses depth from column pairs about one pattern
// period apart.
func (r *Renderer) blitDepth() {
	dx := (r.canvas.Width/2 - r.depth.Width/2) + r.tile.Width/2
	dy := (r.canvas.Height - r.depth.Height) / 2
	r.canvas.Blit(r.depth, dx, dy)
}
