package stereogram

import "slices"

// pattern is the row-local repeating pixel run the synthesizer draws
// from. It pairs a mutable buffer with an explicit cursor index; every
// mutation keeps 0 <= pos < len(pix).
type pattern struct {
	pix []uint32
	pos int
}

func newPattern(seed []uint32) *pattern {
	p := &pattern{pix: make([]uint32, len(seed))}
	copy(p.pix, seed)
	return p
}

func (p *pattern) size() int { return len(p.pix) }

// current returns the pixel under the cursor.
func (p *pattern) current() uint32 { return p.pix[p.pos] }

// advance steps the cursor one pixel, wrapping at the end.
func (p *pattern) advance() {
	p.pos++
	if p.pos == len(p.pix) {
		p.pos = 0
	}
}

// shrink removes n pixels starting at the cursor, wrapping to the
// front of the buffer if the run extends past the end. The cursor is
// left at the pixel that followed the removed run, reclamped modulo
// the new length. The buffer never shrinks below one pixel.
func (p *pattern) shrink(n int) {
	if n <= 0 {
		return
	}
	if n >= len(p.pix) {
		n = len(p.pix) - 1
	}
	if n > len(p.pix)-p.pos {
		toEnd := len(p.pix) - p.pos
		p.pix = p.pix[:p.pos]
		remaining := n - toEnd
		offset := p.pos - remaining
		p.pix = slices.Delete(p.pix, 0, remaining)
		for offset >= len(p.pix) {
			offset -= len(p.pix)
		}
		p.pos = offset
	} else {
		offset := p.pos
		p.pix = slices.Delete(p.pix, p.pos, p.pos+n)
		for offset >= len(p.pix) {
			offset -= len(p.pix)
		}
		p.pos = offset
	}
}

// insert splices pixels into the buffer at index at. The cursor index
// is not moved; callers grow the pattern at or after the cursor so the
// cursor keeps addressing the same position.
func (p *pattern) insert(at int, pixels []uint32) {
	if at > len(p.pix) {
		at = len(p.pix)
	}
	p.pix = slices.Insert(p.pix, at, pixels...)
}
