package homog

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the tolerance below which a magnitude is treated as zero. It gates every
// legality check in this package: the w component of directions, divisors during
// normalization and projection, and determinants during inversion.
const Epsilon = 1e-6

var (
	// ErrInvalidComponent is returned when constructing a direction vector with a
	// non-zero w component.
	ErrInvalidComponent = errors.New("invalid component")
	// ErrInvalidConversion is returned when converting a point vector with a non-zero w
	// component to a direction vector.
	ErrInvalidConversion = errors.New("invalid conversion")
	// ErrDivisionByZero is returned when a point vector whose w component is zero is
	// normalized or projected to plain coordinates, and when inverting a singular
	// transform.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrWriteForbidden is returned when writing to the w component of a direction
	// vector.
	ErrWriteForbidden = errors.New("write forbidden")
)

func isZero(v float64) bool {
	return math.Abs(v) < Epsilon
}
