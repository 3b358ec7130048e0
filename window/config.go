package window

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config describes a window.
type Config struct {
	Width  int
	Height int
	Title  string
	// MaxFPS caps how often the drawing function runs on its own. Zero disables
	// periodic redraws; frames are then only drawn on ForceDisplay.
	MaxFPS float64
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "chaos and fractals",
		MaxFPS: 60,
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var err error
	if c.Width <= 0 {
		err = multierr.Append(err, errors.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		err = multierr.Append(err, errors.Errorf("height must be positive, got %d", c.Height))
	}
	if !(c.MaxFPS >= 0) {
		err = multierr.Append(err, errors.Errorf("max fps must not be negative, got %g", c.MaxFPS))
	}
	return err
}
