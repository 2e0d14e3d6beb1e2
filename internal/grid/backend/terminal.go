package backend

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/neocrystal/internal/grid"
)

// Terminal implements grid.Backend on a tcell screen.
//
// Drawing is not synchronised; only the goroutine driving the grid may call
// Cursor, Span and Flush. PollEvent may run on another goroutine.
type Terminal struct {
	screen  tcell.Screen
	palette *Palette
	x, y    int
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal(palette *Palette) (*Terminal, error) {
	encoding.Register()
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, palette), nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen in tests.
func NewTerminalWithScreen(screen tcell.Screen, palette *Palette) *Terminal {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Terminal{screen: screen, palette: palette}
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.SetStyle(t.palette.Style(grid.FillColor))
	t.screen.Clear()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Sync repaints the whole physical screen, for example after a resize.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// PollEvent blocks for the next terminal event. It returns nil once the
// terminal has been shut down.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// EnableMouse turns mouse reporting on or off.
func (t *Terminal) EnableMouse(on bool) {
	if on {
		t.screen.EnableMouse(tcell.MouseButtonEvents)
		return
	}
	t.screen.DisableMouse()
}

// Cursor moves the draw position to cell (x, y).
func (t *Terminal) Cursor(x, y int) {
	t.x, t.y = x, y
}

// Span sets the cells from the cursor onward with the runes in b, styled
// by the palette entry for c. Wide runes advance the cursor two cells.
func (t *Terminal) Span(b []byte, c grid.Color) {
	style := t.palette.Style(c)
	for len(b) > 0 {
		r, n := utf8.DecodeRune(b)
		b = b[n:]
		t.screen.SetContent(t.x, t.y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		t.x += w
	}
}

// Flush shows the frame on the terminal.
func (t *Terminal) Flush() {
	t.screen.Show()
}
