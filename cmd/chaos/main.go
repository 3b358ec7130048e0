// Package main is the chaos command, which renders iterated function systems and 3D
// scenes of their attractors to PNG files.
package main

import (
	"log"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"honnef.co/go/homog/ifs"
)

const (
	flagDebug      = "debug"
	flagPreset     = "preset"
	flagConfig     = "config"
	flagIterations = "iterations"
	flagWarmup     = "warmup"
	flagWidth      = "width"
	flagHeight     = "height"
	flagSeed       = "seed"
	flagOut        = "out"
)

func newApp() *cli.App {
	var logger golog.Logger

	systemFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  flagPreset,
			Value: ifs.Sierpinski.Name,
			Usage: "name of a built-in system",
		},
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load the system from YAML `FILE` instead of a preset",
		},
		&cli.IntFlag{
			Name:  flagWarmup,
			Value: ifs.DefaultWarmup,
			Usage: "number of initial points to discard",
		},
		&cli.Uint64Flag{
			Name:  flagSeed,
			Value: 1,
			Usage: "random seed",
		},
		&cli.IntFlag{
			Name:  flagWidth,
			Value: 800,
			Usage: "image width in pixels",
		},
		&cli.IntFlag{
			Name:  flagHeight,
			Value: 600,
			Usage: "image height in pixels",
		},
		&cli.StringFlag{
			Name:     flagOut,
			Aliases:  []string{"o"},
			Required: true,
			Usage:    "write the image to `FILE`",
		},
	}

	return &cli.App{
		Name:  "chaos",
		Usage: "render chaos-game fractals",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("chaos")
			} else {
				logger = golog.NewDevelopmentLogger("chaos")
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "render",
				Usage: "render the attractor of a system as a density plot",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  flagIterations,
						Value: 1_000_000,
						Usage: "number of points to plot",
					},
				}, systemFlags...),
				Action: func(c *cli.Context) error {
					return renderAction(c, logger)
				},
			},
			{
				Name:  "scene",
				Usage: "render the attractor as spheres in a 3D scene",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  flagIterations,
						Value: 2000,
						Usage: "number of spheres to draw",
					},
				}, systemFlags...),
				Action: func(c *cli.Context) error {
					return sceneAction(c, logger)
				},
			},
			{
				Name:  "presets",
				Usage: "list the built-in systems",
				Action: func(c *cli.Context) error {
					for _, name := range ifs.Presets() {
						printf(c.App.Writer, "%s\n", name)
					}
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
