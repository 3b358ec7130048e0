package ifs

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"honnef.co/go/homog"
)

// Palette colors a density plot. Pixels that were never hit get the background; the
// rest are blended in Lab space from Low to High by log density.
type Palette struct {
	Background color.Color
	Low, High  colorful.Color
}

// DefaultPalette shades from pale blue to dark navy on white.
var DefaultPalette = Palette{
	Background: color.White,
	Low:        colorful.Color{R: 0.6, G: 0.78, B: 1},
	High:       colorful.Color{R: 0.04, G: 0.08, B: 0.32},
}

// At returns the color for a density t in [0, 1].
func (p Palette) At(t float64) color.Color {
	return p.Low.BlendLab(p.High, t).Clamped()
}

// Raster accumulates how often each pixel of an image is hit by points in bounds.
// The y axis points up in bounds and down in the image.
type Raster struct {
	width, height int
	toPixel       homog.Affine
	counts        []uint32
	max           uint32
}

// NewRaster returns a width×height raster covering bounds.
func NewRaster(bounds homog.Rect, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("raster size must be positive, got %dx%d", width, height)
	}
	if bounds.IsEmpty() {
		return nil, errors.Errorf("raster bounds %s are empty", bounds)
	}
	return &Raster{
		width:   width,
		height:  height,
		toPixel: bounds.MapTo(homog.Rect{X0: 0, Y0: float64(height), X1: float64(width), Y1: 0}),
		counts:  make([]uint32, width*height),
	}, nil
}

// Plot records a hit at pt and reports whether pt fell inside the raster.
func (r *Raster) Plot(pt homog.Point) bool {
	if pt.IsInf() || pt.IsNaN() {
		return false
	}
	px, err := r.toPixel.ApplyPoint(homog.FromPoint(pt)).Point()
	if err != nil || px.IsNaN() {
		return false
	}
	x, y := int(math.Floor(px.X)), int(math.Floor(px.Y))
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	i := y*r.width + x
	r.counts[i]++
	r.max = max(r.max, r.counts[i])
	return true
}

// Count returns the number of hits at pixel (x, y).
func (r *Raster) Count(x, y int) uint32 {
	return r.counts[y*r.width+x]
}

// Image renders the raster with p.
func (r *Raster) Image(p Palette) image.Image {
	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(p.Background)
	dc.Clear()
	if r.max == 0 {
		return dc.Image()
	}
	norm := math.Log1p(float64(r.max))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.counts[y*r.width+x]
			if c == 0 {
				continue
			}
			dc.SetColor(p.At(math.Log1p(float64(c)) / norm))
			dc.SetPixel(x, y)
		}
	}
	return dc.Image()
}

// FitBounds returns a rectangle enclosing pts with a small margin. Points with infinite
// or NaN coordinates are ignored.
func FitBounds(pts []homog.Point) homog.Rect {
	r := homog.EmptyRect()
	n := 0
	for _, pt := range pts {
		if pt.IsInf() || pt.IsNaN() {
			continue
		}
		r = r.Union(pt)
		n++
	}
	if n == 0 {
		return homog.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
	}
	margin := 0.02 * max(r.Width(), r.Height())
	if margin == 0 {
		margin = 0.5
	}
	return r.Inset(margin)
}
