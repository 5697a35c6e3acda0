package component

import "image"

// Rect is an integer screen-space box. X/Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area. Empty rects never overlap anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether the projections of r and o intersect on both
// axes. Edges that merely touch count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return !(r.Right() < o.X || r.X > o.Right() || r.Bottom() < o.Y || r.Y > o.Bottom())
}

// Overlaps is the free-function form of Rect.Overlaps.
func Overlaps(a, b Rect) bool {
	return a.Overlaps(b)
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale projects r by (sx, sy), truncating toward zero like an int cast.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{
		X: int(float64(r.X) * sx),
		Y: int(float64(r.Y) * sy),
		W: int(float64(r.W) * sx),
		H: int(float64(r.H) * sy),
	}
}

// Inflate grows r by pad on every side.
func (r Rect) Inflate(pad int) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
