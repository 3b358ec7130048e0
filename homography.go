package homog

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Homography is a projective transform of the plane, a 3×3 matrix acting on
// homogeneous triples. Unlike [Affine], it may change the w component of a point
// vector, including moving finite points to infinity.
type Homography struct {
	M mgl64.Mat3
}

// NewHomography creates a homography from a row-major array of coefficients.
func NewHomography(rows [9]float64) Homography {
	return Homography{M: mgl64.Mat3{
		rows[0], rows[3], rows[6],
		rows[1], rows[4], rows[7],
		rows[2], rows[5], rows[8],
	}}
}

// Apply transforms the point vector v.
func (h Homography) Apply(v PointVector) PointVector {
	return PVecFrom3(h.M.Mul3x1(v.Vec3()))
}

// Then returns h followed by o.
func (h Homography) Then(o Homography) Homography {
	return Homography{M: o.M.Mul3(h.M)}
}

// Invert computes the inverse transform. It returns an error wrapping
// [ErrDivisionByZero] if the transform is singular.
func (h Homography) Invert() (Homography, error) {
	if isZero(h.M.Det()) {
		return Homography{}, errors.Wrap(ErrDivisionByZero, "homography is singular")
	}
	return Homography{M: h.M.Inv()}, nil
}
