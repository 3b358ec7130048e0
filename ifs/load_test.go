package ifs

import (
	"strings"
	"testing"

	"go.viam.com/test"

	"honnef.co/go/homog"
)

func TestLoadSystem(t *testing.T) {
	s, err := LoadSystem(strings.NewReader(`
name: halves
maps:
  - coefficients: [0.5, 0, 0, 0.5, 0, 0]
    weight: 2
  - coefficients: [0.5, 0, 0, 0.5, 0.5, 0.25]
`))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Name, test.ShouldEqual, "halves")
	test.That(t, s.Maps, test.ShouldResemble, []Map{
		{homog.Affine{N0: 0.5, N3: 0.5}, 2},
		{homog.Affine{N0: 0.5, N3: 0.5, N4: 0.5, N5: 0.25}, 1},
	})
}

func TestLoadSystemErrors(t *testing.T) {
	for _, tc := range []struct {
		name, doc, want string
	}{
		{"empty", "", "empty system description"},
		{"syntax", "maps: [", "parsing system description"},
		{"unknown key", "name: x\ncolour: red\nmaps: []", "decoding system description"},
		{"short", "maps:\n  - coefficients: [1, 0, 0]", "want 6 coefficients"},
		{"no maps", "name: x", "has no maps"},
		{"bad weight", "maps:\n  - coefficients: [1, 0, 0, 1, 0, 0]\n    weight: -1", "negative weight"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSystem(strings.NewReader(tc.doc))
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, tc.want)
		})
	}
}
