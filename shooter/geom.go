package shooter

import "github.com/tsujio/game-util/mathutil"

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(pos *mathutil.Vector2D, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Intersects reports whether the interiors of r and o overlap. Boxes that
// only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) Center() *mathutil.Vector2D {
	return mathutil.NewVector2D(r.X+r.W/2, r.Y+r.H/2)
}
