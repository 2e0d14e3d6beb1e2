package player

import (
	"fmt"
	"strconv"

	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/layout"
)

// Screen draws a View onto a grid of Fields. Each Draw method queues only
// its own field, so callers redraw exactly what changed and call Execute
// once per frame.
type Screen struct {
	ui      *grid.UI[Field]
	applier *layout.Applier[Field]
	layout  layout.Layout
}

// NewScreen creates a screen over a width x height grid.
func NewScreen(width, height int, opts grid.Options) *Screen {
	return &Screen{
		ui:      grid.NewWithOptions[Field](width, height, opts),
		applier: layout.NewApplier(ParseField),
	}
}

// UI returns the underlying grid.
func (s *Screen) UI() *grid.UI[Field] {
	return s.ui
}

// Apply declares the regions of l. An invalid layout leaves the screen as
// it was.
func (s *Screen) Apply(l layout.Layout) error {
	if err := s.applier.Apply(s.ui, l); err != nil {
		return err
	}
	s.layout = l
	return nil
}

// Layout returns the applied layout.
func (s *Screen) Layout() layout.Layout {
	return s.layout
}

// Rows returns the song list height, which is the pager's page size.
func (s *Screen) Rows() int {
	if r, ok := s.ui.Lookup(SongList); ok {
		return r.Y.Len
	}
	return 0
}

// Hit returns the field under grid cell (x, y) and the cell's position
// inside it.
func (s *Screen) Hit(x, y int) (f Field, lx, ly int, ok bool) {
	regions := s.ui.Regions()
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		if x >= r.X.Start && x < r.X.End() && y >= r.Y.Start && y < r.Y.End() {
			return r.ID, x - r.X.Start, y - r.Y.Start, true
		}
	}
	return 0, 0, 0, false
}

// Execute flushes the queued frame to b.
func (s *Screen) Execute(b grid.Backend) {
	s.ui.Execute(b)
}

// DrawAll queues the chrome and every field.
func (s *Screen) DrawAll(v View) {
	s.DrawChrome()
	s.DrawHeader(v)
	s.DrawPage(v)
	s.DrawSongs(v)
	s.DrawIndicators(v)
	s.DrawTitle(v)
	s.DrawArtist(v)
	s.DrawPlaylist(v)
	s.DrawProgress(v)
	s.DrawTimes(v)
	s.DrawLoop(v)
	s.DrawShuffle(v)
	s.DrawVolume(v)
	s.DrawVersion(v)
}

// DrawChrome queues the border, the separator under the song list, the
// field labels, and the slash between the two times. Chrome is injected;
// fields drawn afterwards paint over it.
func (s *Screen) DrawChrome() {
	w, h := s.ui.Size()
	if w < 2 || h < 2 {
		return
	}

	s.ui.Inject(0, 0, "┌", ColorNormal)
	s.ui.InjectRepeatedCols(1, 0, "─", ColorNormal, w-2)
	s.ui.Inject(w-1, 0, "┐", ColorNormal)
	s.ui.InjectRepeatedRows(0, 1, "│", ColorNormal, h-2)
	s.ui.InjectRepeatedRows(w-1, 1, "│", ColorNormal, h-2)
	s.ui.Inject(0, h-1, "└", ColorNormal)
	s.ui.InjectRepeatedCols(1, h-1, "─", ColorNormal, w-2)
	s.ui.Inject(w-1, h-1, "┘", ColorNormal)

	if r, ok := s.ui.Lookup(SongList); ok {
		if sep := r.Y.End(); sep < h-1 {
			s.ui.Inject(0, sep, "├", ColorNormal)
			s.ui.InjectRepeatedCols(1, sep, "─", ColorNormal, w-2)
			s.ui.Inject(w-1, sep, "┤", ColorNormal)
		}
	}

	for _, l := range []struct {
		f    Field
		text string
	}{
		{Version, "Version"},
		{Loop, "Loop"},
		{Shuffle, "Shf"},
		{Volume, "Vol"},
	} {
		if r, ok := s.ui.Lookup(l.f); ok && r.Y.Start > 0 {
			s.ui.Inject(r.X.Start, r.Y.Start-1, l.text, ColorNormal)
		}
	}

	cur, ok1 := s.ui.Lookup(TimeCur)
	total, ok2 := s.ui.Lookup(TimeMax)
	if ok1 && ok2 && cur.Y.Start == total.Y.Start && cur.X.End() < total.X.Start {
		mid := (cur.X.End() + total.X.Start - 1) / 2
		s.ui.Inject(mid, cur.Y.Start, "/", ColorNormal)
	}
}

// DrawHeader queues the prompt being typed, a notice, or the bare border.
func (s *Screen) DrawHeader(v View) {
	w, ok := s.ui.RegionWidth(Header)
	if !ok {
		return
	}
	switch {
	case v.Prompt != PromptNone:
		label := v.Prompt.label()
		s.ui.Write(Header, 0, 0, label+FitTail(v.Query, w-len(label)), ColorPaused)
	case v.Notice != "":
		s.ui.Write(Header, 0, 0, FitBytes(v.Notice, w), ColorBad)
	default:
		s.ui.BlankRow(Header, 0)
	}
}

// DrawPage queues the right-aligned page indicator.
func (s *Screen) DrawPage(v View) {
	w, ok := s.ui.RegionWidth(Page)
	if !ok {
		return
	}
	text := FitBytes(fmt.Sprintf("Page %d/%d", v.Page, v.Pages), w)
	s.ui.Write(Page, w-len(text), 0, text, ColorNormal)
}

// DrawSongs queues the visible page of song names, highlighting the
// selected row. Rows past the end of the list are blanked in one
// instruction.
func (s *Screen) DrawSongs(v View) {
	r, ok := s.ui.Lookup(SongList)
	if !ok {
		return
	}
	n := min(len(v.Rows), r.Y.Len)
	for i := 0; i < n; i++ {
		c := ColorNormal
		if v.Highlight && i == v.Selected {
			c = ColorSelected
		}
		s.ui.Write(SongList, 0, i, FitBytes(v.Rows[i].Name, r.X.Len), c)
	}
	s.ui.WriteRepeatedRows(SongList, 0, n, "", ColorNormal, r.Y.Len-n)
}

// DrawIndicators queues the mark column beside the song list.
func (s *Screen) DrawIndicators(v View) {
	r, ok := s.ui.Lookup(Indicators)
	if !ok {
		return
	}
	n := min(len(v.Rows), r.Y.Len)
	for i := 0; i < n; i++ {
		text, c := markText(v.Rows[i].Mark)
		s.ui.Write(Indicators, 0, i, FitBytes(text, r.X.Len), c)
	}
	s.ui.WriteRepeatedRows(Indicators, 0, n, "", ColorNormal, r.Y.Len-n)
}

func markText(m Mark) (string, grid.Color) {
	switch m {
	case MarkPlaying:
		return " *", ColorGood
	case MarkPaused:
		return " *", ColorPaused
	case MarkQueued:
		return " >", ColorGood
	case MarkBlacklisted:
		return " BL", ColorBad
	default:
		return "", ColorNormal
	}
}

// DrawTitle queues the current song title, usually a marquee window.
func (s *Screen) DrawTitle(v View) {
	s.writeField(Title, v.Title, ColorGood)
}

// DrawArtist queues the current song's artist.
func (s *Screen) DrawArtist(v View) {
	s.writeField(Artist, v.Artist, ColorNormal)
}

// DrawPlaylist queues the current song's playlist.
func (s *Screen) DrawPlaylist(v View) {
	s.writeField(Playlist, v.Playlist, ColorPaused)
}

// DrawTimes queues elapsed and total time.
func (s *Screen) DrawTimes(v View) {
	s.DrawTimeCur(v)
	s.writeField(TimeMax, FormatDuration(v.Total), ColorNormal)
}

// DrawTimeCur queues elapsed time only; it changes every second.
func (s *Screen) DrawTimeCur(v View) {
	s.writeField(TimeCur, FormatDuration(v.Elapsed), ColorNormal)
}

// DrawProgress queues the progress rule: the region's fill glyph in the
// normal color with the elapsed part painted over it.
func (s *Screen) DrawProgress(v View) {
	r, ok := s.ui.Lookup(Progress)
	if !ok {
		return
	}
	s.ui.BlankRow(Progress, 0)
	cells := ProgressCells(v.Total, v.Total-v.Elapsed, r.X.Len)
	s.ui.InjectRepeatedCols(r.X.Start, r.Y.Start, r.Fill, ColorGood, cells)
}

// DrawLoop queues the loop flag.
func (s *Screen) DrawLoop(v View) {
	if v.Loop {
		s.writeField(Loop, "true", ColorGood)
		return
	}
	s.writeField(Loop, "false", ColorBad)
}

// DrawShuffle queues the shuffle flag.
func (s *Screen) DrawShuffle(v View) {
	if v.Shuffle {
		s.writeField(Shuffle, "on", ColorGood)
		return
	}
	s.writeField(Shuffle, "off", ColorBad)
}

// DrawVolume queues the volume level.
func (s *Screen) DrawVolume(v View) {
	s.writeField(Volume, strconv.Itoa(v.Volume), ColorNormal)
}

// DrawVersion queues the version string.
func (s *Screen) DrawVersion(v View) {
	s.writeField(Version, v.Version, ColorNormal)
}

func (s *Screen) writeField(f Field, text string, c grid.Color) {
	w, ok := s.ui.RegionWidth(f)
	if !ok {
		return
	}
	s.ui.Write(f, 0, 0, FitBytes(text, w), c)
}
