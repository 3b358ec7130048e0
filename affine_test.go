package homog

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func transform(t *testing.T, p Point, aff Affine) Point {
	t.Helper()
	out, err := aff.ApplyPoint(FromPoint(p)).Point()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestAffineBasic(t *testing.T) {
	p := Pt(3, 4)

	assertNear(t, transform(t, p, Identity), p)
	assertNear(t, transform(t, p, Scale(2, 2)), Pt(6, 8))
	assertNear(t, transform(t, p, Rotate(0)), p)
	assertNear(t, transform(t, p, Rotate(math.Pi/2)), Pt(-4, 3))
	assertNear(t, transform(t, p, Translate(Vec(5, 6))), Pt(8, 10))
	assertNear(t, transform(t, p, Skew(0, 0)), p)
	assertNear(t, transform(t, p, Skew(2, 4)), Pt(11, 16))
	assertNear(t, transform(t, p, RotateAbout(math.Pi, Pt(3, 3))), Pt(3, 2))
}

func TestAffineWeightedPoint(t *testing.T) {
	// Translation is scaled by w, so the projected result does not depend on it.
	aff := Translate(Vec(5, 6)).ThenScale(2, 1)
	a := aff.ApplyPoint(PVec(1, 1))
	b := aff.ApplyPoint(PVecW(3, 3, 3))
	if b.W != 3 {
		t.Errorf("got w = %g, want 3", b.W)
	}
	pa, err := a.Point()
	if err != nil {
		t.Fatal(err)
	}
	pb, err := b.Point()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, pa, pb)
}

func TestAffineDirection(t *testing.T) {
	aff := Translate(Vec(100, 100)).ThenRotate(math.Pi / 2)
	d := aff.ApplyDirection(DVec(1, 0))
	diff(t, DVec(0, 1), d, approx)
}

func TestAffineMul(t *testing.T) {
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, transform(t, transform(t, p, a2), a1), transform(t, p, a1.Mul(a2)))
	}
}

func TestAffineInvert(t *testing.T) {
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv, err := a.Invert()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, transform(t, transform(t, p, a), aInv), p)
	}

	if _, err := Scale(1, 0).Invert(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got error %v, want %v", err, ErrDivisionByZero)
	}
}

func TestAffineMat3(t *testing.T) {
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	v := PVecW(2, -1, 0.5)
	diff(t, a.ApplyPoint(v), a.Homography().Apply(v), approx)
	diff(t, a.Coefficients(), NewAffine(a.Coefficients()).Coefficients())
}

func TestHomography(t *testing.T) {
	// Sends the line x = 1 to infinity.
	h := NewHomography([9]float64{
		1, 0, 0,
		0, 1, 0,
		1, 0, -1,
	})
	v := h.Apply(PVec(1, 5))
	if !isZero(v.W) {
		t.Errorf("got w = %g, want 0", v.W)
	}
	if _, err := v.AsDirection(); err != nil {
		t.Errorf("point at infinity did not convert to a direction: %s", err)
	}

	inv, err := h.Invert()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PVec(2, 3), h.Then(inv).Apply(PVec(2, 3)), approx)

	singular := NewHomography([9]float64{1, 2, 3, 2, 4, 6, 0, 0, 1})
	if _, err := singular.Invert(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("got error %v, want %v", err, ErrDivisionByZero)
	}
}
