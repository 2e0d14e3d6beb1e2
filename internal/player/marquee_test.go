package player

import (
	"testing"
	"time"
)

func TestMarqueeStaticWhenItFits(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMarquee(10, 300*time.Millisecond)
	m.Reset("short", now)

	if m.Sliding() {
		t.Error("text with padding within width should not slide")
	}
	if got := m.Visible(now.Add(time.Hour)); got != "short" {
		t.Errorf("Visible = %q, want %q", got, "short")
	}
}

func TestMarqueeSlides(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMarquee(5, 100*time.Millisecond)
	m.Reset("abcdefg", now)

	if !m.Sliding() {
		t.Fatal("long text should slide")
	}
	steps := []struct {
		at   time.Duration
		want string
	}{
		{0, "abcde"},
		{50 * time.Millisecond, "abcde"},
		{100 * time.Millisecond, "bcdef"},
		{350 * time.Millisecond, "defg "},
		{700 * time.Millisecond, "   ab"},
		{time.Second, "abcde"},
	}
	for _, s := range steps {
		if got := m.Visible(now.Add(s.at)); got != s.want {
			t.Errorf("Visible(+%v) = %q, want %q", s.at, got, s.want)
		}
	}
}

func TestMarqueeWideGraphemes(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMarquee(5, time.Second)
	m.Reset("日本語テキスト", now)

	got := m.Visible(now)
	if got != "日本" {
		t.Errorf("Visible = %q, want two wide graphemes filling 4 of 5 cells", got)
	}
}

func TestMarqueeResetRewinds(t *testing.T) {
	now := time.Unix(0, 0)
	m := NewMarquee(3, 100*time.Millisecond)
	m.Reset("abcdef", now)
	_ = m.Visible(now.Add(250 * time.Millisecond))

	m.Reset("xyzuvw", now.Add(time.Second))
	if got := m.Visible(now.Add(time.Second)); got != "xyz" {
		t.Errorf("Visible after Reset = %q, want %q", got, "xyz")
	}
}

func TestMarqueeEmpty(t *testing.T) {
	m := NewMarquee(5, time.Second)
	if got := m.Visible(time.Now()); got != "" {
		t.Errorf("Visible = %q, want empty", got)
	}
}
