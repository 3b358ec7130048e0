package window

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

const (
	fovY      = 45.0
	nearPlane = 0.1
	farPlane  = 1000.0
)

var (
	xAxisColor = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
	yAxisColor = color.RGBA{R: 0x30, G: 0xc0, B: 0x30, A: 0xff}
	zAxisColor = color.RGBA{R: 0x30, G: 0x50, B: 0xe0, A: 0xff}
)

// Canvas is an offscreen [Renderer]. Primitives are projected with a look-at camera and
// rasterized with gg; spheres become discs, cubes wireframes and cylinders thick
// strokes. Each call to Present publishes the current frame, which can be retrieved
// with Snapshot.
type Canvas struct {
	mu         sync.Mutex
	dc         *gg.Context
	view, proj mgl64.Mat4
	lighting   bool
	closed     bool
	frame      *image.RGBA

	// Background is the color the canvas is cleared to.
	Background color.Color
}

var _ Renderer = (*Canvas)(nil)

// NewCanvas returns a canvas of the given size, with a perspective camera at (0, 0, 10)
// looking at the origin.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		dc:         gg.NewContext(width, height),
		Background: color.White,
	}
	c.setCamera(r3.Vector{Z: 10}, r3.Vector{}, PerspectiveCamera)
	return c
}

func vec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

func (c *Canvas) SetCamera(eye, target r3.Vector, typ CameraType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCamera(eye, target, typ)
}

func (c *Canvas) setCamera(eye, target r3.Vector, typ CameraType) {
	forward := target.Sub(eye)
	up := r3.Vector{Y: 1}
	if forward.Cross(up).Norm() < 1e-9 {
		up = r3.Vector{Z: 1}
	}
	c.view = mgl64.LookAtV(vec3(eye), vec3(target), vec3(up))

	aspect := float64(c.dc.Width()) / float64(c.dc.Height())
	switch typ {
	case OrthographicCamera:
		// Match the visible extent of the perspective camera at the target.
		s := forward.Norm() * math.Tan(mgl64.DegToRad(fovY)/2)
		c.proj = mgl64.Ortho(-s*aspect, s*aspect, -s, s, nearPlane, farPlane)
	default:
		c.proj = mgl64.Perspective(mgl64.DegToRad(fovY), aspect, nearPlane, farPlane)
	}
}

func (c *Canvas) EnableLighting() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lighting = true
}

func (c *Canvas) DisableLighting() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lighting = false
}

// project maps p to canvas coordinates, with y growing downwards. It reports false if p
// lies outside the camera's depth range.
func (c *Canvas) project(p r3.Vector) (float64, float64, bool) {
	w, h := c.dc.Width(), c.dc.Height()
	win := mgl64.Project(vec3(p), c.view, c.proj, 0, 0, w, h)
	if win[2] < 0 || win[2] > 1 {
		return 0, 0, false
	}
	return win[0], float64(h) - win[1], true
}

// projectRadius returns the on-screen size of a length r at p.
func (c *Canvas) projectRadius(p r3.Vector, r float64) (float64, bool) {
	x0, y0, ok0 := c.project(p)
	right := c.view.Row(0).Vec3()
	x1, y1, ok1 := c.project(p.Add(r3.Vector{X: right[0], Y: right[1], Z: right[2]}.Mul(r)))
	if !ok0 || !ok1 {
		return 0, false
	}
	return math.Hypot(x1-x0, y1-y0), true
}

func (c *Canvas) DrawSphere(center r3.Vector, radius float64, col color.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x, y, ok := c.project(center)
	if !ok {
		return
	}
	r, ok := c.projectRadius(center, radius)
	if !ok {
		return
	}
	c.dc.DrawCircle(x, y, r)
	if c.lighting {
		g := gg.NewRadialGradient(x-r/3, y-r/3, 0, x, y, r)
		g.AddColorStop(0, color.White)
		g.AddColorStop(1, col)
		c.dc.SetFillStyle(g)
	} else {
		c.dc.SetColor(col)
	}
	c.dc.Fill()
}

func (c *Canvas) DrawCube(center r3.Vector, size float64, col color.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := size / 2
	var corners [8][2]float64
	for i := range corners {
		p := center.Add(r3.Vector{
			X: sign(i&1 != 0) * h,
			Y: sign(i&2 != 0) * h,
			Z: sign(i&4 != 0) * h,
		})
		x, y, ok := c.project(p)
		if !ok {
			return
		}
		corners[i] = [2]float64{x, y}
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1.5)
	// Corners differing in exactly one bit share an edge.
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				c.dc.DrawLine(corners[i][0], corners[i][1], corners[j][0], corners[j][1])
			}
		}
	}
	c.dc.Stroke()
}

func sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}

func (c *Canvas) DrawCylinder(base, top r3.Vector, radius float64, col color.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x0, y0, ok0 := c.project(base)
	x1, y1, ok1 := c.project(top)
	r, ok := c.projectRadius(base, radius)
	if !ok0 || !ok1 || !ok {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(2 * r)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
	c.dc.SetLineCap(gg.LineCapButt)
}

func (c *Canvas) DrawAxis(length float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ox, oy, ok := c.project(r3.Vector{})
	if !ok {
		return
	}
	c.dc.SetLineWidth(2)
	for _, axis := range []struct {
		dir r3.Vector
		col color.Color
	}{
		{r3.Vector{X: length}, xAxisColor},
		{r3.Vector{Y: length}, yAxisColor},
		{r3.Vector{Z: length}, zAxisColor},
	} {
		x, y, ok := c.project(axis.dir)
		if !ok {
			continue
		}
		c.dc.SetColor(axis.col)
		c.dc.DrawLine(ox, oy, x, y)
		c.dc.Stroke()
	}
}

func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dc.SetColor(c.Background)
	c.dc.Clear()
}

func (c *Canvas) Present() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("canvas is closed")
	}
	src := c.dc.Image()
	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Src)
	c.frame = frame
	return nil
}

// Snapshot returns the last presented frame, or nil if no frame has been presented.
func (c *Canvas) Snapshot() image.Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frame == nil {
		return nil
	}
	return image.Image(c.frame)
}

// SavePNG writes the last presented frame to path.
func (c *Canvas) SavePNG(path string) error {
	img := c.Snapshot()
	if img == nil {
		return errors.New("no frame has been presented")
	}
	return errors.Wrapf(gg.SavePNG(path, img), "saving frame to %s", path)
}

func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
