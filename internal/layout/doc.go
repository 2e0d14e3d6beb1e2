// Package layout describes where the player's regions sit on the grid.
//
// A layout is a list of named rectangles with an optional fill glyph. It can
// be written as TOML, YAML, or a Lua script that computes rectangles from the
// grid size:
//
//	-- layout.lua
//	return {
//	  { name = "song_list", x = 2, y = 1, w = width - 10, h = height - 6 },
//	  { name = "header",    x = 2, y = 0, w = 24, h = 1, fill = "─" },
//	}
//
// Layouts are validated against the grid before they reach the grid engine,
// whose Declare treats an out-of-grid rectangle as a programming error. A
// Watcher reloads the file when it changes on disk.
package layout
