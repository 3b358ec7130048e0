package homog

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// DirectionVector is a free vector in homogeneous coordinates. Its w component is
// always zero; it is not stored and cannot be written.
type DirectionVector struct {
	X, Y float64
}

// DVec returns the direction vector (x, y, 0).
func DVec(x, y float64) DirectionVector {
	return DirectionVector{X: x, Y: y}
}

// DVecW returns the direction vector (x, y, 0). It returns an error wrapping
// [ErrInvalidComponent] unless w is zero.
func DVecW(x, y, w float64) (DirectionVector, error) {
	if !isZero(w) {
		return DirectionVector{}, errors.Wrapf(ErrInvalidComponent, "direction vector must have w = 0, got %g", w)
	}
	return DirectionVector{X: x, Y: y}, nil
}

// FromVec2 returns the direction vector (v.X, v.Y, 0).
func FromVec2(v Vec2) DirectionVector {
	return DirectionVector{X: v.X, Y: v.Y}
}

// DVecFrom3 returns the direction vector whose x and y are v's x and y. It returns an
// error wrapping [ErrInvalidComponent] unless v's z is zero.
func DVecFrom3(v mgl64.Vec3) (DirectionVector, error) {
	return DVecW(v[0], v[1], v[2])
}

func (DirectionVector) vector() {}

func (v DirectionVector) Kind() Kind { return DirectionKind }

func (v DirectionVector) Components() (x, y, w float64) {
	return v.X, v.Y, 0
}

// W returns 0.
func (v DirectionVector) W() float64 { return 0 }

func (v DirectionVector) At(i int) float64 {
	return componentAt(v.X, v.Y, 0, i)
}

// SetAt sets the component at index i, where 0 is x and 1 is y. Writing index 2 returns
// an error wrapping [ErrWriteForbidden] and leaves v unchanged. SetAt panics for any
// other index.
func (v *DirectionVector) SetAt(i int, f float64) error {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		return errors.Wrapf(ErrWriteForbidden, "cannot write w of direction vector %s", v)
	default:
		componentAt(0, 0, 0, i)
	}
	return nil
}

func (v DirectionVector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, 0}
}

// Vec2 returns v as a plain vector.
func (v DirectionVector) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

func (v DirectionVector) String() string {
	return formatComponents(v.X, v.Y, 0)
}

// Add returns v + o.
func (v DirectionVector) Add(o DirectionVector) DirectionVector {
	return DirectionVector{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddPoint returns v + o, which is a point vector.
func (v DirectionVector) AddPoint(o PointVector) PointVector {
	return v.AsPoint().Add(o)
}

// Sub returns v − o.
func (v DirectionVector) Sub(o DirectionVector) DirectionVector {
	return DirectionVector{X: v.X - o.X, Y: v.Y - o.Y}
}

// SubPoint returns v − o, which is a point vector.
func (v DirectionVector) SubPoint(o PointVector) PointVector {
	return v.AsPoint().Sub(o)
}

// AddInPlace sets v to v + o. There is no in-place form accepting a point vector, as
// its result would be a point.
func (v *DirectionVector) AddInPlace(o DirectionVector) {
	*v = v.Add(o)
}

// SubInPlace sets v to v − o.
func (v *DirectionVector) SubInPlace(o DirectionVector) {
	*v = v.Sub(o)
}

// Mul returns v scaled by f.
func (v DirectionVector) Mul(f float64) DirectionVector {
	return DirectionVector{X: v.X * f, Y: v.Y * f}
}

// MulInPlace scales v by f.
func (v *DirectionVector) MulInPlace(f float64) {
	*v = v.Mul(f)
}

// Cross computes the cross product of the homogeneous triples v and o.
//
// Because both w components are zero, the x and y components of the product are always
// zero and its third component is the planar cross product x₁y₂ − y₁x₂. Cross returns
// the former as a direction vector, keeping w = 0, and the latter as a scalar.
func (v DirectionVector) Cross(o DirectionVector) (DirectionVector, float64) {
	return DirectionVector{}, v.Vec2().Cross(o.Vec2())
}

// CrossPoint returns the cross product of the homogeneous triples v and o, which is a
// point vector.
func (v DirectionVector) CrossPoint(o PointVector) PointVector {
	x, y, w := cross(v, o)
	return PointVector{X: x, Y: y, W: w}
}

// Dot returns the dot product of v and o. The w component of o does not contribute.
func (v DirectionVector) Dot(o Vector) float64 {
	return dot(v, o)
}

// Length returns the euclidean length √(x² + y²).
func (v DirectionVector) Length() float64 {
	return v.Vec2().Hypot()
}

// AsPoint converts v to a point vector with w = 0, a point at infinity. The result
// cannot be normalized or projected.
func (v DirectionVector) AsPoint() PointVector {
	return PointVector{X: v.X, Y: v.Y, W: 0}
}
