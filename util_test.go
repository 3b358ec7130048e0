package homog

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with an absolute tolerance of 1e-9.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Point) {
	t.Helper()
	if d := math.Hypot(got.X-want.X, got.Y-want.Y); d > 1e-9 {
		t.Fatalf("got %s, expected %s", got, want)
	}
}
