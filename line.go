package homog

import (
	"fmt"
	"math"
)

// Line is a line in homogeneous form, the set of points (x, y, w) satisfying
// Ax + By + Cw = 0.
type Line struct {
	A, B, C float64
}

// LineThrough returns the line through p and q. If p and q are the same point the
// result is the degenerate line (0, 0, 0).
func LineThrough(p, q PointVector) Line {
	x, y, w := cross(p, q)
	return Line{A: x, B: y, C: w}
}

func (l Line) String() string {
	return fmt.Sprintf("%gx + %gy + %gw = 0", l.A, l.B, l.C)
}

func (l Line) Vector() PointVector {
	return PointVector{X: l.A, Y: l.B, W: l.C}
}

// Intersect returns the intersection of l and o. The intersection of two parallel lines
// is a point at infinity, with w = 0, and can be converted to the lines' common
// direction with [PointVector.AsDirection].
func (l Line) Intersect(o Line) PointVector {
	return l.Vector().Cross(o.Vector())
}

// Contains reports whether p lies on l. The residual is measured relative to the
// magnitudes of l and p.
func (l Line) Contains(p PointVector) bool {
	scale := math.Hypot(l.A, l.B) * math.Max(math.Abs(p.W), math.Hypot(p.X, p.Y))
	if scale == 0 {
		return false
	}
	return isZero(l.Vector().Dot(p) / scale)
}

// Direction returns the direction along l.
func (l Line) Direction() DirectionVector {
	return DirectionVector{X: l.B, Y: -l.A}
}

// IsDegenerate reports whether l fails to describe a line, which is the case when both
// A and B are zero.
func (l Line) IsDegenerate() bool {
	return isZero(l.A) && isZero(l.B)
}
