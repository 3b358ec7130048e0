package main

import (
	"fmt"
	"image/color"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/edaniels/golog"
	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"honnef.co/go/homog"
	"honnef.co/go/homog/ifs"
	"honnef.co/go/homog/window"
)

func printf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}

func loadSystem(c *cli.Context) (ifs.System, error) {
	if path := c.String(flagConfig); path != "" {
		//nolint:gosec
		f, err := os.Open(path)
		if err != nil {
			return ifs.System{}, err
		}
		defer f.Close()
		s, err := ifs.LoadSystem(f)
		return s, errors.Wrapf(err, "loading %s", path)
	}
	name := c.String(flagPreset)
	s, ok := ifs.Lookup(name)
	if !ok {
		return ifs.System{}, errors.Errorf("unknown preset %q, choose one of %s", name, strings.Join(ifs.Presets(), ", "))
	}
	return s, nil
}

func samplePoints(c *cli.Context) ([]homog.Point, error) {
	s, err := loadSystem(c)
	if err != nil {
		return nil, err
	}
	seed := c.Uint64(flagSeed)
	seq, err := s.Points(c.Int(flagIterations), c.Int(flagWarmup), rand.NewPCG(seed, seed))
	if err != nil {
		return nil, err
	}
	var pts []homog.Point
	for pt := range seq {
		pts = append(pts, pt)
	}
	return pts, nil
}

func renderAction(c *cli.Context, logger golog.Logger) error {
	pts, err := samplePoints(c)
	if err != nil {
		return err
	}
	bounds := ifs.FitBounds(pts)
	r, err := ifs.NewRaster(bounds, c.Int(flagWidth), c.Int(flagHeight))
	if err != nil {
		return err
	}
	var missed int
	for _, pt := range pts {
		if !r.Plot(pt) {
			missed++
		}
	}
	logger.Debugw("plotted points", "points", len(pts), "missed", missed, "bounds", bounds.String())

	out := c.String(flagOut)
	if err := gg.SavePNG(out, r.Image(ifs.DefaultPalette)); err != nil {
		return errors.Wrapf(err, "saving %s", out)
	}
	logger.Infow("rendered", "file", out)
	return nil
}

func sceneAction(c *cli.Context, logger golog.Logger) error {
	pts, err := samplePoints(c)
	if err != nil {
		return err
	}
	// Fit the attractor into the square [-1, 1]² in the z = 0 plane.
	toScene := ifs.FitBounds(pts).MapTo(homog.Rect{X0: -1, Y0: -1, X1: 1, Y1: 1})
	centers := make([]r3.Vector, 0, len(pts))
	for _, pt := range pts {
		p, err := toScene.ApplyPoint(homog.FromPoint(pt)).Point()
		if err != nil {
			return err
		}
		centers = append(centers, r3.Vector{X: p.X, Y: p.Y})
	}

	cfg := window.DefaultConfig()
	cfg.Width = c.Int(flagWidth)
	cfg.Height = c.Int(flagHeight)
	cfg.MaxFPS = 0
	canvas := window.NewCanvas(cfg.Width, cfg.Height)
	w, err := window.New(canvas, cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug(w.Usage())

	drawn := make(chan struct{})
	var once sync.Once
	w.SetCamera(r3.Vector{X: 0.6, Y: -1.2, Z: 3}, r3.Vector{}, window.PerspectiveCamera)
	w.EnableLighting()
	w.SetDrawingFunction(func(w *window.Object) {
		w.DrawAxis(1.2)
		for i, center := range centers {
			w.DrawSphere(center, 0.01, ifs.DefaultPalette.At(float64(i)/float64(len(centers))))
		}
		w.DrawCube(r3.Vector{}, 2, color.Gray{Y: 0x80})
		once.Do(func() { close(drawn) })
	})
	w.ForceDisplay()
	<-drawn
	// Exit waits for the frame to be presented.
	if err := w.Exit(); err != nil {
		return err
	}

	out := c.String(flagOut)
	if err := canvas.SavePNG(out); err != nil {
		return err
	}
	logger.Infow("rendered scene", "file", out, "spheres", len(centers))
	return nil
}
