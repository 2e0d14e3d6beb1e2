package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/neocrystal/internal/grid"
)

// Pair describes the style behind a color id. Colors are hex strings
// ("#00ff00"); empty means the terminal default.
type Pair struct {
	Foreground string
	Background string
	Bold       bool
}

// Palette maps grid color ids to tcell styles.
type Palette struct {
	styles   map[grid.Color]tcell.Style
	fallback tcell.Style
}

// NewPalette builds a palette from color pairs. Ids without a pair render
// with the terminal default style.
func NewPalette(pairs map[grid.Color]Pair) (*Palette, error) {
	p := &Palette{
		styles:   make(map[grid.Color]tcell.Style, len(pairs)),
		fallback: tcell.StyleDefault,
	}
	for id, pair := range pairs {
		style, err := pair.style()
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", id, err)
		}
		p.styles[id] = style
	}
	return p, nil
}

// DefaultPalette returns the classic player palette:
// 0 white, 1 green, 2 red, 3 black on white, 4 yellow, all on black.
func DefaultPalette() *Palette {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Bold(true)
	return &Palette{
		styles: map[grid.Color]tcell.Style{
			0: base.Foreground(tcell.ColorWhite),
			1: base.Foreground(tcell.ColorGreen),
			2: base.Foreground(tcell.ColorRed),
			3: base.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
			4: base.Foreground(tcell.ColorYellow),
		},
		fallback: base.Foreground(tcell.ColorWhite),
	}
}

// Style returns the style for id.
func (p *Palette) Style(id grid.Color) tcell.Style {
	if s, ok := p.styles[id]; ok {
		return s
	}
	return p.fallback
}

// Set overrides the style for id.
func (p *Palette) Set(id grid.Color, style tcell.Style) {
	p.styles[id] = style
}

func (pr Pair) style() (tcell.Style, error) {
	fg, err := parseColor(pr.Foreground)
	if err != nil {
		return tcell.StyleDefault, err
	}
	bg, err := parseColor(pr.Background)
	if err != nil {
		return tcell.StyleDefault, err
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg).Bold(pr.Bold), nil
}

func parseColor(s string) (tcell.Color, error) {
	if s == "" {
		return tcell.ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("parsing %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
