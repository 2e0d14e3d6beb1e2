//go:generate mockgen -source=backend.go -destination=mocks/backend_mock.go -package=mocks

// Package grid is a backend-agnostic layout and draw-instruction engine for
// fixed-size character grids.
//
// A caller declares named rectangular regions on the grid, writes text into
// them during a frame, and finally calls Execute, which replays the queued
// draw instructions through a Backend and resets for the next frame.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│        UI (declare, write, inject)      │
//	├────────────────────┬────────────────────┤
//	│  Region table      │  Program (blob +   │
//	│  (persistent)      │  instructions,     │
//	│                    │  per frame)        │
//	├────────────────────┴────────────────────┤
//	│   Backend: Cursor / Span / Flush        │
//	└─────────────────────────────────────────┘
//
// Region-relative writes (Write, WriteRepeatedCols, WriteRepeatedRows) blank
// the target row with the region's fill glyph before drawing shorter text, and
// are dropped entirely when the text does not fit. Inject calls use absolute
// coordinates and ignore regions; they are meant for borders and separators.
//
// Lengths are measured in bytes and each byte is assumed to occupy one cell,
// so region text should be ASCII. Multi-byte glyphs belong in fill glyphs and
// Inject calls.
//
// Usage:
//
//	ui := grid.New[Field](50, 20)
//	ui.Declare(Title, grid.Span{Start: 2, Len: 23}, grid.Span{Start: 16, Len: 1})
//	ui.Write(Title, 0, 0, "now playing", 1)
//	ui.Execute(backend)
//
// A UI is not safe for concurrent use. It never blocks and starts no
// goroutines; drive it from the goroutine that owns the display.
package grid
