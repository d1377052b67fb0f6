package brush

import "image"

// Pixel is a premultiplied float color in the stroke buffer.
type Pixel struct {
	R, G, B, A float32
}

// minArenaPad is the smallest margin added around the covered area when
// the arena grows.
const minArenaPad = 32

// StrokeBuffer accumulates the dabs of one stroke before it is blended
// onto the destination.
//
// Pixels live in an arena addressed from a movable origin. The arena keeps
// its allocation across Reset, so rendering stroke after stroke of similar
// extent allocates nothing. Every arena pixel outside Bounds is transparent.
//
// A StrokeBuffer is not safe for concurrent use.
type StrokeBuffer struct {
	bounds image.Rectangle
	origin image.Point
	w, h   int
	pix    []Pixel
	spare  []Pixel
}

// NewStrokeBuffer returns an empty buffer.
func NewStrokeBuffer() *StrokeBuffer {
	return &StrokeBuffer{}
}

// Bounds returns the union of the rectangles composited since the last
// Reset.
func (b *StrokeBuffer) Bounds() image.Rectangle {
	return b.bounds
}

// Empty reports whether nothing has been composited since the last Reset.
func (b *StrokeBuffer) Empty() bool {
	return b.bounds.Empty()
}

// Pixels returns the number of pixels covered by Bounds.
func (b *StrokeBuffer) Pixels() int {
	return b.bounds.Dx() * b.bounds.Dy()
}

// Reset makes the buffer empty and keeps the arena for reuse.
func (b *StrokeBuffer) Reset() {
	for y := b.bounds.Min.Y; y < b.bounds.Max.Y; y++ {
		clear(b.row(y, b.bounds.Min.X, b.bounds.Max.X))
	}
	b.bounds = image.Rectangle{}
}

// At returns the accumulated pixel at (x, y); outside Bounds it is
// transparent.
func (b *StrokeBuffer) At(x, y int) Pixel {
	if !image.Pt(x, y).In(b.bounds) {
		return Pixel{}
	}
	return b.pix[(y-b.origin.Y)*b.w+(x-b.origin.X)]
}

func (b *StrokeBuffer) row(y, x0, x1 int) []Pixel {
	off := (y-b.origin.Y)*b.w - b.origin.X
	return b.pix[off+x0 : off+x1]
}

func (b *StrokeBuffer) window() image.Rectangle {
	return image.Rectangle{Min: b.origin, Max: b.origin.Add(image.Pt(b.w, b.h))}
}

// ensure makes the arena cover r together with the current bounds.
func (b *StrokeBuffer) ensure(r image.Rectangle) {
	u := r
	if !b.bounds.Empty() {
		u = b.bounds.Union(r)
	}
	if u.In(b.window()) {
		return
	}

	padX, padY := max(u.Dx()/4, minArenaPad), max(u.Dy()/4, minArenaPad)
	w, h := u.Dx()+2*padX, u.Dy()+2*padY
	origin := image.Pt(u.Min.X-padX, u.Min.Y-padY)
	n := w * h

	if b.bounds.Empty() {
		// Everything in the arena is transparent: re-origin in place.
		if cap(b.pix) < n {
			b.pix = make([]Pixel, n)
		}
		b.pix = b.pix[:n]
		b.origin, b.w, b.h = origin, w, h
		return
	}

	next := b.spare
	if cap(next) < n {
		next = make([]Pixel, n)
	} else {
		clear(next[:cap(next)])
		next = next[:n]
	}
	for y := b.bounds.Min.Y; y < b.bounds.Max.Y; y++ {
		off := (y-origin.Y)*w - origin.X
		copy(next[off+b.bounds.Min.X:off+b.bounds.Max.X], b.row(y, b.bounds.Min.X, b.bounds.Max.X))
	}
	b.spare = b.pix
	b.pix = next
	b.origin, b.w, b.h = origin, w, h
}

// Composite accumulates one dab. The source alpha at each pixel is
// m.Cov·d.Alpha·c.A and is combined with the flow union
//
//	out = src + dst·(1 − srcA)
//
// per premultiplied channel, so alpha approaches but never exceeds 1.
func (b *StrokeBuffer) Composite(d Dab, m *Mask, c RGBA) {
	r := m.Rect
	if r.Empty() {
		return
	}
	b.ensure(r)

	scale := float32(d.Alpha * c.A)
	cr, cg, cb := float32(c.R), float32(c.G), float32(c.B)
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		cov := m.Cov[(y-r.Min.Y)*w : (y-r.Min.Y+1)*w]
		dst := b.row(y, r.Min.X, r.Max.X)
		for i, cv := range cov {
			sa := cv * scale
			if sa <= 0 {
				continue
			}
			p := &dst[i]
			inv := 1 - sa
			p.R = cr*sa + p.R*inv
			p.G = cg*sa + p.G*inv
			p.B = cb*sa + p.B*inv
			p.A = min(sa+p.A*inv, 1)
		}
	}

	if b.bounds.Empty() {
		b.bounds = r
	} else {
		b.bounds = b.bounds.Union(r)
	}
}

// Premultiplied writes Bounds as premultiplied RGBA8 rows of 4·Dx bytes
// into into, growing it if needed, and returns the filled slice.
func (b *StrokeBuffer) Premultiplied(into []byte) []byte {
	n := b.Pixels() * 4
	if cap(into) < n {
		into = make([]byte, n)
	}
	into = into[:n]

	i := 0
	for y := b.bounds.Min.Y; y < b.bounds.Max.Y; y++ {
		for _, p := range b.row(y, b.bounds.Min.X, b.bounds.Max.X) {
			a := unit8(p.A)
			into[i+0] = min(unit8(p.R), a)
			into[i+1] = min(unit8(p.G), a)
			into[i+2] = min(unit8(p.B), a)
			into[i+3] = a
			i += 4
		}
	}
	return into
}

func unit8(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
