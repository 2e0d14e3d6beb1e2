package player

import (
	_ "embed"

	"github.com/dshills/neocrystal/internal/layout"
)

// DefaultWidth and DefaultHeight are the grid size the built-in layout
// is drawn for.
const (
	DefaultWidth  = 50
	DefaultHeight = 20
)

//go:embed default_layout.toml
var defaultLayout []byte

// DefaultLayout returns the built-in 50x20 layout.
func DefaultLayout() layout.Layout {
	l, err := layout.ParseTOML("default_layout.toml", defaultLayout)
	if err != nil {
		panic("player: built-in layout: " + err.Error())
	}
	return l
}
