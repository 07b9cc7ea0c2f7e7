package stereogram

import (
	"math"

	"text-to-stereogram/internal/raster"
)

// synthesizeRow writes the stereogram pixels of canvas row y for
// columns [tw, W). The leftmost tw pixels must already hold the seed
// tile row; they become the initial pattern. src supplies fresh pixels
// when the pattern lengthens.
//
// The pattern length is tracked as a float so that shallow depth
// slopes, which adjust it by fractions of a pixel per column, still
// accumulate into integer changes instead of rounding away each step.
func (r *Renderer) synthesizeRow(src *raster.Surface, y int, c float64) {
	row := r.canvas.Row(y)
	tw := src.Width
	pat := newPattern(row[:tw])
	length := float64(pat.size())
	prev := 0
	for x := tw; x < r.canvas.Width; x++ {
		cur := int(raster.RChannel(row[x]))
		// Depth maps are inverted: 0 is the far plane, 255 near, so
		// the comparisons look the wrong way round. Wall-eyed viewing
		// shortens the pattern as pixels get nearer; cross-eyed swaps
		// the branches.
		switch {
		case r.shortens(cur, prev):
			d := float64(absDiff(cur, prev)) * c
			newLen := length - d
			pat.shrink(pat.size() - int(math.Round(newLen)))
			length = newLen
		case r.lengthens(cur, prev):
			d := float64(absDiff(cur, prev)) * c
			newLen := length + d
			r.growPattern(pat, src, x, y, int(math.Round(newLen))-pat.size())
			length = newLen
		}
		row[x] = pat.current()
		prev = cur
		pat.advance()
	}
}

func (r *Renderer) shortens(cur, prev int) bool {
	if r.cross {
		return cur < prev
	}
	return cur > prev
}

func (r *Renderer) lengthens(cur, prev int) bool {
	if r.cross {
		return cur > prev
	}
	return cur < prev
}

// growPattern inserts n pixels at the cursor, sourced from the tile
// row 1 to 5 rows above the current one. The jitter keeps depth that
// alternates between two values from accidentally introducing an
// extra repeating pattern. The run starts at column x mod tw and
// wraps to the start of the tile row when it hits the right edge.
func (r *Renderer) growPattern(pat *pattern, src *raster.Surface, x, y, n int) {
	if n <= 0 {
		return
	}
	tw, th := src.Width, src.Height
	py := (y - (r.rng.Intn(5) + 1)) % th
	if py < 0 {
		py += th
	}
	px := x % tw
	trow := src.Row(py)
	run := min(n, tw-px)
	pat.insert(pat.pos, trow[px:px+run])
	if n > tw-px {
		rest := n - (tw - px)
		pat.insert(pat.pos+1+(tw-px), trow[:rest])
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
