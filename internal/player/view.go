package player

import (
	"time"

	"github.com/dshills/neocrystal/internal/grid"
)

// Colors used by the player. They index the backend palette.
const (
	ColorNormal   grid.Color = 0
	ColorGood     grid.Color = 1
	ColorBad      grid.Color = 2
	ColorSelected grid.Color = 3
	ColorPaused   grid.Color = 4
)

// Mark is the indicator shown beside a song.
type Mark uint8

// Song marks.
const (
	MarkNone Mark = iota
	MarkPlaying
	MarkPaused
	MarkQueued
	MarkBlacklisted
)

// Row is one visible song.
type Row struct {
	Name string
	Mark Mark
}

// Prompt is the kind of text being typed into the header.
type Prompt uint8

// Prompts.
const (
	PromptNone Prompt = iota
	PromptSearch
	PromptArtist
	PromptPlaylist
)

func (p Prompt) label() string {
	switch p {
	case PromptSearch:
		return "Find: "
	case PromptArtist:
		return "Artist: "
	case PromptPlaylist:
		return "Playlist: "
	default:
		return ""
	}
}

// View is everything the screen shows. The application rebuilds it from
// its state; the screen only reads it.
type View struct {
	Rows      []Row
	Selected  int
	Highlight bool

	Page, Pages int

	Prompt Prompt
	Query  string
	Notice string

	Title    string
	Artist   string
	Playlist string

	Elapsed, Total time.Duration

	Loop    bool
	Shuffle bool
	Volume  int
	Version string
}
