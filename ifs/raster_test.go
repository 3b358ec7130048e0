package ifs

import (
	"image/color"
	"math"
	"testing"

	"go.viam.com/test"

	"honnef.co/go/homog"
)

func TestRasterPlot(t *testing.T) {
	r, err := NewRaster(homog.Rect{X0: 0, Y0: 0, X1: 4, Y1: 2}, 4, 2)
	test.That(t, err, test.ShouldBeNil)

	// y points up in bounds and down in the image.
	test.That(t, r.Plot(homog.Pt(0.5, 1.5)), test.ShouldBeTrue)
	test.That(t, r.Plot(homog.Pt(0.5, 1.5)), test.ShouldBeTrue)
	test.That(t, r.Plot(homog.Pt(3.5, 0.5)), test.ShouldBeTrue)
	test.That(t, r.Plot(homog.Pt(5, 1)), test.ShouldBeFalse)
	test.That(t, r.Plot(homog.Pt(-1, 1)), test.ShouldBeFalse)
	test.That(t, r.Plot(homog.Pt(math.Inf(1), 1)), test.ShouldBeFalse)
	test.That(t, r.Plot(homog.Pt(1, math.NaN())), test.ShouldBeFalse)

	test.That(t, r.Count(0, 0), test.ShouldEqual, 2)
	test.That(t, r.Count(3, 1), test.ShouldEqual, 1)
	test.That(t, r.Count(1, 1), test.ShouldEqual, 0)

	img := r.Image(DefaultPalette)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, 4)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, 2)

	bg := color.RGBAModel.Convert(color.White)
	test.That(t, color.RGBAModel.Convert(img.At(1, 1)), test.ShouldResemble, bg)
	test.That(t, color.RGBAModel.Convert(img.At(0, 0)), test.ShouldResemble, color.RGBAModel.Convert(DefaultPalette.At(1)))
	test.That(t, color.RGBAModel.Convert(img.At(0, 0)), test.ShouldNotResemble, color.RGBAModel.Convert(img.At(3, 1)))
}

func TestNewRasterErrors(t *testing.T) {
	_, err := NewRaster(homog.Rect{X1: 1, Y1: 1}, 0, 10)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewRaster(homog.Rect{}, 10, 10)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFitBounds(t *testing.T) {
	b := FitBounds([]homog.Point{homog.Pt(0, 0), homog.Pt(10, 5)})
	test.That(t, b.X0, test.ShouldAlmostEqual, -0.2, 1e-9)
	test.That(t, b.Y0, test.ShouldAlmostEqual, -0.2, 1e-9)
	test.That(t, b.X1, test.ShouldAlmostEqual, 10.2, 1e-9)
	test.That(t, b.Y1, test.ShouldAlmostEqual, 5.2, 1e-9)
	test.That(t, b.Contains(homog.Pt(10, 5)), test.ShouldBeTrue)

	withNonFinite := FitBounds([]homog.Point{
		homog.Pt(0, 0), homog.Pt(math.Inf(1), 3), homog.Pt(10, 5), homog.Pt(math.NaN(), 1),
	})
	test.That(t, withNonFinite, test.ShouldResemble, b)
	test.That(t, FitBounds([]homog.Point{homog.Pt(math.Inf(-1), 0)}), test.ShouldResemble, FitBounds(nil))

	single := FitBounds([]homog.Point{homog.Pt(1, 1)})
	test.That(t, single.IsEmpty(), test.ShouldBeFalse)
	test.That(t, FitBounds(nil).IsEmpty(), test.ShouldBeFalse)
}

func TestRenderPreset(t *testing.T) {
	pts := collect(t, Sierpinski, 5000)
	r, err := NewRaster(FitBounds(pts), 64, 64)
	test.That(t, err, test.ShouldBeNil)
	hits := 0
	for _, pt := range pts {
		if r.Plot(pt) {
			hits++
		}
	}
	test.That(t, hits, test.ShouldEqual, len(pts))
}
