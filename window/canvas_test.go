package window

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func isColor(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	return r == wr && g == wg && b == wb && a == wa
}

func TestCanvasSphere(t *testing.T) {
	c := NewCanvas(64, 48)
	test.That(t, c.Snapshot(), test.ShouldBeNil)
	test.That(t, c.Width(), test.ShouldEqual, 64)
	test.That(t, c.Height(), test.ShouldEqual, 48)

	red := color.RGBA{R: 0xff, A: 0xff}
	c.Clear()
	c.DrawSphere(r3.Vector{}, 1, red)
	test.That(t, c.Present(), test.ShouldBeNil)

	img := c.Snapshot()
	test.That(t, img, test.ShouldNotBeNil)
	test.That(t, isColor(img.At(32, 24), red), test.ShouldBeTrue)
	test.That(t, isColor(img.At(1, 1), color.RGBA{0xff, 0xff, 0xff, 0xff}), test.ShouldBeTrue)

	// Frames are published by Present only.
	c.Clear()
	test.That(t, isColor(c.Snapshot().At(32, 24), red), test.ShouldBeTrue)
}

func TestCanvasOutOfView(t *testing.T) {
	c := NewCanvas(32, 32)
	c.SetCamera(r3.Vector{Z: 10}, r3.Vector{}, OrthographicCamera)
	c.Clear()
	// Behind the camera.
	c.DrawSphere(r3.Vector{Z: 20}, 1, color.Black)
	c.DrawCube(r3.Vector{Z: 20}, 1, color.Black)
	test.That(t, c.Present(), test.ShouldBeNil)
	img := c.Snapshot()
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if !isColor(img.At(x, y), color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				t.Fatalf("pixel (%d, %d) was drawn", x, y)
			}
		}
	}
}

func TestCanvasPrimitives(t *testing.T) {
	c := NewCanvas(64, 64)
	c.SetCamera(r3.Vector{X: 4, Y: 3, Z: 6}, r3.Vector{}, PerspectiveCamera)
	c.EnableLighting()
	c.Clear()
	c.DrawAxis(2)
	c.DrawCube(r3.Vector{}, 1, color.Black)
	c.DrawCylinder(r3.Vector{}, r3.Vector{Y: 1}, 0.2, color.Black)
	c.DrawSphere(r3.Vector{X: 1}, 0.3, color.RGBA{B: 0xff, A: 0xff})
	c.DisableLighting()
	test.That(t, c.Present(), test.ShouldBeNil)

	img := c.Snapshot()
	drawn := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if !isColor(img.At(x, y), color.RGBA{0xff, 0xff, 0xff, 0xff}) {
				drawn++
			}
		}
	}
	test.That(t, drawn, test.ShouldBeGreaterThan, 0)

	path := filepath.Join(t.TempDir(), "frame.png")
	test.That(t, c.SavePNG(path), test.ShouldBeNil)
	st, err := os.Stat(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, st.Size(), test.ShouldBeGreaterThan, 0)
}

func TestCanvasClose(t *testing.T) {
	c := NewCanvas(8, 8)
	test.That(t, c.SavePNG(filepath.Join(t.TempDir(), "x.png")), test.ShouldNotBeNil)
	test.That(t, c.Close(), test.ShouldBeNil)
	test.That(t, c.Present(), test.ShouldNotBeNil)
}
