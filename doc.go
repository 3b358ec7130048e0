// Package homog provides homogeneous-coordinate vector algebra for 2D affine and
// projective geometry.
//
// # Points and directions
//
// A homogeneous triple (x, y, w) represents the plain point (x/w, y/w) when w is
// non-zero, and a direction "at infinity" when w is zero. This package models the two
// interpretations as distinct types:
//
//   - [PointVector] has a freely writable w component, defaulting to 1.
//   - [DirectionVector] has no stored w component at all; its w is always zero.
//
// Keeping the kinds apart lets the compiler reject most illegal operations. There is no
// way to set the w component of a direction, no Normalize method on directions, no
// Length method on points, and no in-place method that would turn a direction into a
// point. The remaining checks depend on values and are reported as errors: see
// [ErrInvalidComponent], [ErrInvalidConversion], [ErrDivisionByZero] and
// [ErrWriteForbidden].
//
// # Kind rules
//
// Adding, subtracting or crossing two vectors produces a point vector if either operand
// is a point vector, and a direction vector otherwise. [PointVector] methods accept any
// [Vector]; [DirectionVector] has separate methods for direction and point operands,
// such as [DirectionVector.Add] and [DirectionVector.AddPoint]. Scaling and dot
// products work on either kind.
//
// # Zero tests
//
// Every decision about whether a floating-point value is zero uses the same tolerance,
// [Epsilon]. A direction may be constructed from a triple whose w is 1e-9, but not from
// one whose w is 1e-3.
//
// # Conversions
//
// Conversions between the kinds, and to and from the plain [Point] and [Vec2] types,
// are explicit methods:
//
//   - [FromPoint] and [PointVector.Point]
//   - [FromVec2] and [DirectionVector.Vec2]
//   - [DirectionVector.AsPoint] and [PointVector.AsDirection]
//   - [PointVector.Vec3], [DirectionVector.Vec3], [PVecFrom3] and [DVecFrom3] for
//     interoperating with mathgl
//
// # Transforms
//
// [Affine] and [Homography] transform homogeneous vectors. [Line] represents lines in
// homogeneous form, where joining two points and intersecting two lines are both cross
// products.
package homog
