package homog

import (
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Fatalf("%s is not empty", r)
	}
	for _, p := range []Point{Pt(1, 5), Pt(-2, 3), Pt(4, -1)} {
		r = r.Union(p)
	}
	diff(t, Rect{-2, -1, 4, 5}, r)
	diff(t, Pt(1, 2), r.Center())
	diff(t, Rect{-3, -2, 5, 6}, r.Inset(1))
}

func TestRectContains(t *testing.T) {
	r := NewRectFromPoints(Pt(2, 2), Pt(0, 0))
	diff(t, Rect{0, 0, 2, 2}, r)
	if !r.Contains(Pt(0, 0)) {
		t.Error("minimum corner is not contained")
	}
	if r.Contains(Pt(2, 1)) {
		t.Error("maximum edge is contained")
	}
	if r.Contains(Pt(math.NaN(), 1)) {
		t.Error("NaN is contained")
	}
}

func TestRectMapTo(t *testing.T) {
	from := Rect{0, 0, 2, 2}
	to := Rect{10, 10, 14, 18}
	aff := from.MapTo(to)
	assertNear(t, transform(t, Pt(0, 0), aff), Pt(10, 10))
	assertNear(t, transform(t, Pt(1, 1), aff), Pt(12, 14))
	assertNear(t, transform(t, Pt(2, 2), aff), Pt(14, 18))
}
