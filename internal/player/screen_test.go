package player

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/neocrystal/internal/grid"
	"github.com/dshills/neocrystal/internal/grid/backend"
	"github.com/dshills/neocrystal/internal/layout"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	s := NewScreen(DefaultWidth, DefaultHeight, grid.DefaultOptions())
	if err := s.Apply(DefaultLayout()); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return s
}

func testView() View {
	return View{
		Rows: []Row{
			{Name: "alpha", Mark: MarkPlaying},
			{Name: "beta"},
			{Name: "gamma", Mark: MarkBlacklisted},
		},
		Selected:  0,
		Highlight: true,
		Page:      1,
		Pages:     3,
		Title:     "alpha",
		Artist:    "Unknown",
		Playlist:  "Mix",
		Elapsed:   30 * time.Second,
		Total:     time.Minute,
		Volume:    50,
		Version:   "v0.1.0",
	}
}

func render(t *testing.T, s *Screen, v View) *backend.Canvas {
	t.Helper()
	c := backend.NewCanvas(DefaultWidth, DefaultHeight)
	s.DrawAll(v)
	s.Execute(c)
	return c
}

func textAt(c *backend.Canvas, x, y, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if r := c.At(x+i, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestScreenChrome(t *testing.T) {
	s := newTestScreen(t)
	c := render(t, s, testView())

	wantTop := "┌" + strings.Repeat("─", 39) + "Page 1/3" + "─┐"
	if got := c.Row(0); got != wantTop {
		t.Errorf("row 0 = %q\nwant    %q", got, wantTop)
	}
	wantSep := "├" + strings.Repeat("─", 48) + "┤"
	if got := c.Row(15); got != wantSep {
		t.Errorf("row 15 = %q", got)
	}
	wantBottom := "└" + strings.Repeat("─", 48) + "┘"
	if got := c.Row(19); got != wantBottom {
		t.Errorf("row 19 = %q", got)
	}
	for y := 1; y < 19; y++ {
		if y == 15 {
			continue
		}
		if c.At(0, y).Rune != '│' || c.At(49, y).Rune != '│' {
			t.Errorf("row %d missing side borders: %q", y, c.Row(y))
		}
	}

	labels := map[int]string{2: "Version", 11: "Loop", 39: "Shf", 43: "Vol"}
	for x, want := range labels {
		if got := textAt(c, x, 17, len(want)); got != want {
			t.Errorf("label at %d = %q, want %q", x, got, want)
		}
	}
	if c.At(24, 18).Rune != '/' {
		t.Errorf("time separator missing: %q", c.Row(18))
	}
}

func TestScreenFields(t *testing.T) {
	s := newTestScreen(t)
	c := render(t, s, testView())

	if got := textAt(c, 2, 1, 5); got != "alpha" {
		t.Errorf("song row 0 = %q", got)
	}
	if c.At(2, 1).Color != ColorSelected {
		t.Errorf("selected row color = %d, want %d", c.At(2, 1).Color, ColorSelected)
	}
	if c.At(2, 2).Color != ColorNormal {
		t.Errorf("unselected row color = %d", c.At(2, 2).Color)
	}
	if got := textAt(c, 43, 1, 2); got != " *" || c.At(44, 1).Color != ColorGood {
		t.Errorf("playing mark = %q color %d", got, c.At(44, 1).Color)
	}
	if got := textAt(c, 43, 3, 3); got != " BL" || c.At(44, 3).Color != ColorBad {
		t.Errorf("blacklist mark = %q", got)
	}

	fields := []struct {
		x, y int
		want string
	}{
		{2, 16, "alpha"},
		{26, 16, "Unknown"},
		{39, 16, "Mix"},
		{2, 18, "v0.1.0"},
		{11, 18, "false"},
		{18, 18, "00:30"},
		{26, 18, "01:00"},
		{39, 18, "off"},
		{43, 18, "50"},
	}
	for _, f := range fields {
		if got := textAt(c, f.x, f.y, len(f.want)); got != f.want {
			t.Errorf("(%d,%d) = %q, want %q", f.x, f.y, got, f.want)
		}
	}
	if c.At(11, 18).Color != ColorBad {
		t.Error("loop off should be drawn in the bad color")
	}
}

func TestScreenProgress(t *testing.T) {
	s := newTestScreen(t)
	c := render(t, s, testView())

	for x := 18; x < 33; x++ {
		cell := c.At(x, 17)
		if cell.Rune != '─' {
			t.Fatalf("progress cell %d = %q", x, cell.Rune)
		}
		want := ColorNormal
		if x < 26 {
			want = ColorGood
		}
		if cell.Color != want {
			t.Errorf("progress cell %d color = %d, want %d", x, cell.Color, want)
		}
	}
}

func TestScreenRedrawsOnlyWhatChanged(t *testing.T) {
	s := newTestScreen(t)
	v := testView()
	c := render(t, s, v)

	v.Elapsed = 31 * time.Second
	s.DrawTimeCur(v)
	if n := s.UI().Pending().Len(); n != 1 {
		t.Errorf("time update queued %d instructions, want 1", n)
	}
	s.Execute(c)
	if got := textAt(c, 18, 18, 5); got != "00:31" {
		t.Errorf("time = %q", got)
	}
	if got := textAt(c, 2, 1, 5); got != "alpha" {
		t.Error("untouched fields must survive a partial frame")
	}
}

func TestScreenShorterListBlanksTail(t *testing.T) {
	s := newTestScreen(t)
	v := testView()
	c := render(t, s, v)

	v.Rows = v.Rows[:1]
	s.DrawSongs(v)
	s.DrawIndicators(v)
	s.Execute(c)

	if got := strings.TrimSpace(textAt(c, 2, 2, 40)); got != "" {
		t.Errorf("row 2 should be blank, got %q", got)
	}
	if got := strings.TrimSpace(textAt(c, 43, 3, 5)); got != "" {
		t.Errorf("indicator row 3 should be blank, got %q", got)
	}
}

func TestScreenHeaderPrompt(t *testing.T) {
	s := newTestScreen(t)
	v := testView()
	v.Prompt = PromptSearch
	v.Query = "a very long search query indeed"
	c := render(t, s, v)

	got := textAt(c, 2, 0, 24)
	if !strings.HasPrefix(got, "Find: ") || !strings.HasSuffix(got, "query indeed") {
		t.Errorf("header = %q", got)
	}

	v.Prompt = PromptNone
	s.DrawHeader(v)
	s.Execute(c)
	if got := textAt(c, 2, 0, 24); got != strings.Repeat("─", 24) {
		t.Errorf("cleared header = %q, want border restored", got)
	}
}

func TestScreenHit(t *testing.T) {
	s := newTestScreen(t)

	f, lx, ly, ok := s.Hit(5, 3)
	if !ok || f != SongList || lx != 3 || ly != 2 {
		t.Errorf("Hit(5,3) = %v %d %d %v", f, lx, ly, ok)
	}
	if f, _, _, ok := s.Hit(40, 18); !ok || f != Shuffle {
		t.Errorf("Hit(40,18) = %v %v", f, ok)
	}
	if _, _, _, ok := s.Hit(0, 0); ok {
		t.Error("border cell should not hit a field")
	}
	if s.Rows() != 14 {
		t.Errorf("Rows = %d, want 14", s.Rows())
	}
}

func TestScreenApplyInvalidKeepsLayout(t *testing.T) {
	s := newTestScreen(t)
	bad := layout.Layout{Regions: []layout.RegionSpec{{Name: "title", X: 40, Y: 0, W: 20, H: 1}}}

	err := s.Apply(bad)
	var le *layout.Error
	if !errors.As(err, &le) {
		t.Fatalf("Apply = %v, want *layout.Error", err)
	}
	if w, _ := s.UI().RegionWidth(Title); w != 23 {
		t.Errorf("title width = %d, want the built-in 23", w)
	}
}

func TestScreenReflowsOnNewLayout(t *testing.T) {
	s := newTestScreen(t)
	v := testView()
	c := render(t, s, v)

	l := DefaultLayout()
	for i := range l.Regions {
		switch l.Regions[i].Name {
		case "song_list", "indicators":
			l.Regions[i].H = 10
		}
	}
	if err := s.Apply(l); err != nil {
		t.Fatal(err)
	}
	s.DrawAll(v)
	s.Execute(c)

	if s.Rows() != 10 {
		t.Errorf("Rows = %d, want 10", s.Rows())
	}
	if c.Row(11) != "├"+strings.Repeat("─", 48)+"┤" {
		t.Errorf("separator should follow the shorter list: %q", c.Row(11))
	}
}
