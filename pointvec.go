package homog

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// PointVector is an affine point in homogeneous coordinates (x, y, w). The plain 2D
// point it represents is (x/w, y/w).
//
// W is unconstrained and may be assigned freely, but it must be non-zero before the
// vector can be normalized or projected to a [Point]. A point vector with w = 0 is a
// point at infinity.
type PointVector struct {
	X, Y, W float64
}

// PVec returns the point vector (x, y, 1).
func PVec(x, y float64) PointVector {
	return PointVector{X: x, Y: y, W: 1}
}

// PVecW returns the point vector (x, y, w).
func PVecW(x, y, w float64) PointVector {
	return PointVector{X: x, Y: y, W: w}
}

// FromPoint returns the point vector (p.X, p.Y, 1).
func FromPoint(p Point) PointVector {
	return PointVector{X: p.X, Y: p.Y, W: 1}
}

// PVecFrom3 returns the point vector whose x, y and w are v's x, y and z.
func PVecFrom3(v mgl64.Vec3) PointVector {
	return PointVector{X: v[0], Y: v[1], W: v[2]}
}

func (PointVector) vector() {}

func (v PointVector) Kind() Kind { return PointKind }

func (v PointVector) Components() (x, y, w float64) {
	return v.X, v.Y, v.W
}

func (v PointVector) At(i int) float64 {
	return componentAt(v.X, v.Y, v.W, i)
}

// SetAt sets the component at index i, where 0 is x, 1 is y and 2 is w. All three
// components of a point vector are writable; the error exists for symmetry with
// [DirectionVector.SetAt] and is always nil. SetAt panics for any other index.
func (v *PointVector) SetAt(i int, f float64) error {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.W = f
	default:
		componentAt(0, 0, 0, i)
	}
	return nil
}

func (v PointVector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.W}
}

func (v PointVector) String() string {
	return formatComponents(v.X, v.Y, v.W)
}

// Add returns v + o. The result is a point vector regardless of o's kind.
func (v PointVector) Add(o Vector) PointVector {
	x, y, w := o.Components()
	return PointVector{
		X: v.X + x,
		Y: v.Y + y,
		W: v.W + w,
	}
}

// Sub returns v − o. The result is a point vector regardless of o's kind.
func (v PointVector) Sub(o Vector) PointVector {
	x, y, w := o.Components()
	return PointVector{
		X: v.X - x,
		Y: v.Y - y,
		W: v.W - w,
	}
}

// AddInPlace sets v to v + o.
func (v *PointVector) AddInPlace(o Vector) {
	*v = v.Add(o)
}

// SubInPlace sets v to v − o.
func (v *PointVector) SubInPlace(o Vector) {
	*v = v.Sub(o)
}

// Mul returns v with all three components scaled by f.
func (v PointVector) Mul(f float64) PointVector {
	return PointVector{
		X: v.X * f,
		Y: v.Y * f,
		W: v.W * f,
	}
}

// MulInPlace scales all three components of v by f.
func (v *PointVector) MulInPlace(f float64) {
	*v = v.Mul(f)
}

// Cross returns the cross product of the homogeneous triples v and o.
//
// The cross product of two points is the homogeneous line through them; see
// [LineThrough].
func (v PointVector) Cross(o Vector) PointVector {
	x, y, w := cross(v, o)
	return PointVector{X: x, Y: y, W: w}
}

// CrossInPlace sets v to the cross product of v and o.
func (v *PointVector) CrossInPlace(o Vector) {
	*v = v.Cross(o)
}

// Dot returns the dot product of the homogeneous triples v and o.
func (v PointVector) Dot(o Vector) float64 {
	return dot(v, o)
}

// Normalize divides x and y by w and sets w to 1. It returns an error wrapping
// [ErrDivisionByZero] and leaves v unchanged if w is zero.
func (v *PointVector) Normalize() error {
	if isZero(v.W) {
		return errors.Wrapf(ErrDivisionByZero, "cannot normalize point vector %s", v)
	}
	v.X /= v.W
	v.Y /= v.W
	v.W = 1
	return nil
}

// Normalized returns a normalized copy of v. See [PointVector.Normalize].
func (v PointVector) Normalized() (PointVector, error) {
	err := v.Normalize()
	return v, err
}

// Point projects v to plain coordinates (x/w, y/w). It returns an error wrapping
// [ErrDivisionByZero] if w is zero.
func (v PointVector) Point() (Point, error) {
	if isZero(v.W) {
		return Point{}, errors.Wrapf(ErrDivisionByZero, "cannot project point vector %s", v)
	}
	return Point{X: v.X / v.W, Y: v.Y / v.W}, nil
}

// AsDirection converts v to a direction vector. It returns an error wrapping
// [ErrInvalidConversion] unless w is zero.
//
// Any point vector with w = 0 converts, including one that was only ever a
// degenerate point. A round trip through [DirectionVector.AsPoint] is lossless.
func (v PointVector) AsDirection() (DirectionVector, error) {
	if !isZero(v.W) {
		return DirectionVector{}, errors.Wrapf(ErrInvalidConversion, "point vector %s has non-zero w", v)
	}
	return DirectionVector{X: v.X, Y: v.Y}, nil
}
