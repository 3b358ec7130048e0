package ifs

import (
	"io"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/homog"
)

type mapConfig struct {
	// Coefficients are (a, b, c, d, e, f) as in homog.Affine.
	Coefficients []float64 `mapstructure:"coefficients"`
	// Weight defaults to 1.
	Weight *float64 `mapstructure:"weight"`
}

type systemConfig struct {
	Name string      `mapstructure:"name"`
	Maps []mapConfig `mapstructure:"maps"`
}

// LoadSystem reads a system from YAML of the form
//
//	name: sierpinski
//	maps:
//	  - coefficients: [0.5, 0, 0, 0.5, 0, 0]
//	    weight: 1
//	  - coefficients: [0.5, 0, 0, 0.5, 0.5, 0]
//
// Coefficients are ordered as the fields of [homog.Affine]. Unknown keys are rejected.
func LoadSystem(r io.Reader) (System, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return System{}, errors.New("empty system description")
		}
		return System{}, errors.Wrap(err, "parsing system description")
	}

	var cfg systemConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return System{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return System{}, errors.Wrap(err, "decoding system description")
	}

	s := System{Name: cfg.Name}
	for i, m := range cfg.Maps {
		if len(m.Coefficients) != 6 {
			return System{}, errors.Errorf("map %d: want 6 coefficients, got %d", i, len(m.Coefficients))
		}
		w := 1.0
		if m.Weight != nil {
			w = *m.Weight
		}
		s.Maps = append(s.Maps, Map{
			Transform: homog.NewAffine([6]float64(m.Coefficients)),
			Weight:    w,
		})
	}
	if err := s.Validate(); err != nil {
		return System{}, err
	}
	return s, nil
}
