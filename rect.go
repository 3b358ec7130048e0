package homog

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// EmptyRect returns a rectangle that contains nothing and acts as the identity for
// [Rect.Union].
func EmptyRect() Rect {
	return Rect{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

// Contains reports whether pt lies inside the rectangle. The minimum edges are
// inclusive and the maximum edges are exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle containing r and pt.
func (r Rect) Union(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset returns a new rectangle with each edge moved outwards by d. A negative d
// moves the edges inwards.
func (r Rect) Inset(d float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 - d,
		Y0: r.Y0 - d,
		X1: r.X1 + d,
		Y1: r.Y1 + d,
	}
}

// MapTo returns the affine transform that maps r onto o, corner to corner.
//
// The result is degenerate if r has no area.
func (r Rect) MapTo(o Rect) Affine {
	sx := o.Width() / r.Width()
	sy := o.Height() / r.Height()
	return Translate(Vec(-r.X0, -r.Y0)).ThenScale(sx, sy).ThenTranslate(Vec(o.X0, o.Y0))
}
