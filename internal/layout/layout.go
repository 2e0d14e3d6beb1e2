package layout

import (
	"fmt"
	"strings"

	"github.com/dshills/neocrystal/internal/grid"
)

// RegionSpec is one named rectangle.
type RegionSpec struct {
	Name string `toml:"name" yaml:"name"`
	X    int    `toml:"x" yaml:"x"`
	Y    int    `toml:"y" yaml:"y"`
	W    int    `toml:"w" yaml:"w"`
	H    int    `toml:"h" yaml:"h"`
	Fill string `toml:"fill,omitempty" yaml:"fill,omitempty"`
}

// Spans returns the rectangle as grid spans.
func (r RegionSpec) Spans() (x, y grid.Span) {
	return grid.Span{Start: r.X, Len: r.W}, grid.Span{Start: r.Y, Len: r.H}
}

// FillGlyph returns the fill, defaulting to a space.
func (r RegionSpec) FillGlyph() string {
	if r.Fill == "" {
		return grid.DefaultFill
	}
	return r.Fill
}

func (r RegionSpec) String() string {
	return fmt.Sprintf("%s{x=%d y=%d w=%d h=%d}", r.Name, r.X, r.Y, r.W, r.H)
}

// Layout is an ordered list of regions. Later regions win when the grid
// engine resolves overlaps, but Validate rejects overlaps up front.
type Layout struct {
	Regions []RegionSpec `toml:"region" yaml:"regions"`
}

// Region returns the region named name.
func (l Layout) Region(name string) (RegionSpec, bool) {
	for _, r := range l.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return RegionSpec{}, false
}

// Names returns region names in declaration order.
func (l Layout) Names() []string {
	names := make([]string, len(l.Regions))
	for i, r := range l.Regions {
		names[i] = r.Name
	}
	return names
}

// Error lists everything wrong with a layout.
type Error struct {
	Problems []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Problems) == 1 {
		return "invalid layout: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid layout (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validate checks that every region is named once, is non-empty, has a
// single-width fill glyph, lies inside a width x height grid, and overlaps
// no other region.
func (l Layout) Validate(width, height int) error {
	var problems []string
	seen := make(map[string]bool, len(l.Regions))

	for i, r := range l.Regions {
		switch {
		case r.Name == "":
			problems = append(problems, fmt.Sprintf("region %d has no name", i))
		case seen[r.Name]:
			problems = append(problems, fmt.Sprintf("%s declared twice", r.Name))
		}
		seen[r.Name] = true

		if r.Fill != "" && !grid.ValidFill(r.Fill) {
			problems = append(problems, fmt.Sprintf("%s fill %q must be one single-width glyph", r, r.Fill))
		}

		if r.W <= 0 || r.H <= 0 {
			problems = append(problems, fmt.Sprintf("%s is empty", r))
			continue
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > width || r.Y+r.H > height {
			problems = append(problems, fmt.Sprintf("%s leaves the %dx%d grid", r, width, height))
			continue
		}

		x, y := r.Spans()
		for _, prev := range l.Regions[:i] {
			px, py := prev.Spans()
			if prev.W > 0 && prev.H > 0 && x.Overlaps(px) && y.Overlaps(py) {
				problems = append(problems, fmt.Sprintf("%s overlaps %s", r, prev))
			}
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
