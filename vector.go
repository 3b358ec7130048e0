package homog

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind distinguishes point vectors from direction vectors.
type Kind uint8

const (
	PointKind Kind = iota
	DirectionKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "point"
	case DirectionKind:
		return "direction"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Vector is implemented by [PointVector] and [DirectionVector]. It is sealed; no other
// types may implement it.
//
// Operations whose result kind depends on both operands (addition, subtraction, cross
// product) accept a Vector where either kind is legal. The result is a point vector if
// either operand is a point vector, and a direction vector otherwise, mirroring affine
// geometry: point + vector = point, vector + vector = vector.
type Vector interface {
	// Components returns the homogeneous coordinates (x, y, w).
	Components() (x, y, w float64)
	// Kind reports whether the vector is a point or a direction.
	Kind() Kind
	// At returns the component at index i, where 0 is x, 1 is y and 2 is w. It panics
	// for any other index.
	At(i int) float64
	// Vec3 returns the components as a mathgl vector.
	Vec3() mgl64.Vec3

	vector()
}

var _ Vector = PointVector{}
var _ Vector = DirectionVector{}

// Mul returns v scaled by f. It is the scalar-on-the-left counterpart of
// [PointVector.Mul] and [DirectionVector.Mul] and preserves the kind of v.
func Mul[V interface {
	PointVector | DirectionVector
	Mul(float64) V
}](f float64, v V) V {
	return v.Mul(f)
}

func componentAt(x, y, w float64, i int) float64 {
	switch i {
	case 0:
		return x
	case 1:
		return y
	case 2:
		return w
	default:
		panic(fmt.Sprintf("homog: component index %d out of range [0, 2]", i))
	}
}

// cross computes the cross product of two homogeneous triples.
func cross(a, b Vector) (x, y, w float64) {
	ax, ay, aw := a.Components()
	bx, by, bw := b.Components()
	return ay*bw - aw*by, aw*bx - ax*bw, ax*by - ay*bx
}

func dot(a, b Vector) float64 {
	ax, ay, aw := a.Components()
	bx, by, bw := b.Components()
	return ax*bx + ay*by + aw*bw
}

func formatComponents(x, y, w float64) string {
	return fmt.Sprintf("[%g : %g : %g]", x, y, w)
}
