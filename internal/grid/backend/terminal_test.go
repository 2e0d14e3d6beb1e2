package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/neocrystal/internal/grid"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen, nil)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Shutdown)
	return term, screen
}

func TestTerminalSpan(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 5)

	term.Cursor(3, 2)
	term.Span([]byte("ok"), 1)
	term.Flush()

	r, _, style, _ := screen.GetContent(3, 2) //nolint:staticcheck // GetContent is the simulation accessor
	if r != 'o' {
		t.Errorf("rune at (3,2) = %q, want o", r)
	}
	if style != DefaultPalette().Style(1) {
		t.Error("span should use the palette style for its color")
	}
	r, _, _, _ = screen.GetContent(4, 2) //nolint:staticcheck
	if r != 'k' {
		t.Errorf("rune at (4,2) = %q, want k", r)
	}
}

func TestTerminalMultiByteAdvance(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 1)

	term.Cursor(0, 0)
	term.Span([]byte("──x"), 0)
	term.Flush()

	r, _, _, _ := screen.GetContent(2, 0) //nolint:staticcheck
	if r != 'x' {
		t.Errorf("rune at (2,0) = %q, want x", r)
	}
}

func TestTerminalDrivenByGrid(t *testing.T) {
	term, screen := newSimTerminal(t, 10, 2)
	ui := grid.New[int](10, 2)
	ui.Declare(1, grid.Span{Start: 0, Len: 10}, grid.Span{Start: 0, Len: 1})

	ui.Write(1, 1, 0, "play", 1)
	ui.InjectRepeatedCols(0, 1, "─", 0, 10)
	ui.Execute(term)

	r, _, _, _ := screen.GetContent(1, 0) //nolint:staticcheck
	if r != 'p' {
		t.Errorf("rune at (1,0) = %q, want p", r)
	}
	r, _, _, _ = screen.GetContent(9, 1) //nolint:staticcheck
	if r != '─' {
		t.Errorf("rune at (9,1) = %q, want ─", r)
	}
}
