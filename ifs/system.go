// Package ifs renders iterated function systems with the chaos game. A system is a set
// of affine maps with weights; starting from a point, each step applies a map chosen at
// random in proportion to its weight. After a short warmup, the visited points trace
// out the system's attractor.
package ifs

import (
	"iter"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"honnef.co/go/homog"
)

// DefaultWarmup is the number of initial iterations whose points are discarded.
const DefaultWarmup = 20

// Map is one transform of an iterated function system.
type Map struct {
	Transform homog.Affine
	// Weight is the relative probability of choosing this map.
	Weight float64
}

// System is an iterated function system.
type System struct {
	Name string
	Maps []Map
}

// Validate checks that s has at least one map, that no weight is negative, and that
// the weights do not all vanish.
func (s System) Validate() error {
	if len(s.Maps) == 0 {
		return errors.Errorf("system %q has no maps", s.Name)
	}
	var total float64
	for i, m := range s.Maps {
		if m.Weight < 0 {
			return errors.Errorf("system %q: map %d has negative weight %g", s.Name, i, m.Weight)
		}
		if m.Transform.IsNaN() {
			return errors.Errorf("system %q: map %d has NaN coefficients", s.Name, i)
		}
		total += m.Weight
	}
	if total <= 0 {
		return errors.Errorf("system %q: weights sum to zero", s.Name)
	}
	return nil
}

// Points plays the chaos game from the origin, yielding n points after discarding the
// first warmup. Maps are chosen using randomness from src.
//
// The sequence ends early if the current point can no longer be projected to plain
// coordinates.
func (s System) Points(n, warmup int, src rand.Source) (iter.Seq[homog.Point], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	weights := make([]float64, len(s.Maps))
	for i, m := range s.Maps {
		weights[i] = m.Weight
	}
	return func(yield func(homog.Point) bool) {
		choose := distuv.NewCategorical(weights, src)
		v := homog.PVec(0, 0)
		for i := 0; i < warmup+n; i++ {
			v = s.Maps[int(choose.Rand())].Transform.ApplyPoint(v)
			if i < warmup {
				continue
			}
			pt, err := v.Point()
			if err != nil {
				return
			}
			if !yield(pt) {
				return
			}
		}
	}, nil
}
