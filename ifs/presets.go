package ifs

import (
	"maps"
	"slices"

	"honnef.co/go/homog"
)

// Sierpinski is the Sierpinski triangle.
var Sierpinski = System{
	Name: "sierpinski",
	Maps: []Map{
		{homog.Scale(0.5, 0.5), 1},
		{homog.Scale(0.5, 0.5).ThenTranslate(homog.Vec(0.5, 0)), 1},
		{homog.Scale(0.5, 0.5).ThenTranslate(homog.Vec(0.25, 0.5)), 1},
	},
}

// BarnsleyFern is Barnsley's fern.
var BarnsleyFern = System{
	Name: "fern",
	Maps: []Map{
		{homog.Affine{N0: 0, N1: 0, N2: 0, N3: 0.16, N4: 0, N5: 0}, 0.01},
		{homog.Affine{N0: 0.85, N1: -0.04, N2: 0.04, N3: 0.85, N4: 0, N5: 1.6}, 0.85},
		{homog.Affine{N0: 0.2, N1: 0.23, N2: -0.26, N3: 0.22, N4: 0, N5: 1.6}, 0.07},
		{homog.Affine{N0: -0.15, N1: 0.26, N2: 0.28, N3: 0.24, N4: 0, N5: 0.44}, 0.07},
	},
}

// Dragon is the Heighway dragon.
var Dragon = System{
	Name: "dragon",
	Maps: []Map{
		{homog.Affine{N0: 0.5, N1: 0.5, N2: -0.5, N3: 0.5, N4: 0, N5: 0}, 1},
		{homog.Affine{N0: -0.5, N1: 0.5, N2: -0.5, N3: -0.5, N4: 1, N5: 0}, 1},
	},
}

var presets = map[string]System{
	Sierpinski.Name:   Sierpinski,
	BarnsleyFern.Name: BarnsleyFern,
	Dragon.Name:       Dragon,
}

// Lookup returns the preset with the given name.
func Lookup(name string) (System, bool) {
	s, ok := presets[name]
	return s, ok
}

// Presets returns the names of all presets in sorted order.
func Presets() []string {
	return slices.Sorted(maps.Keys(presets))
}
