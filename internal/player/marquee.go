package player

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// marqueePad separates the end of the text from its start while sliding.
const marqueePad = "   "

// Marquee slides text that is wider than its window one grapheme per step.
// Text that fits is shown as is.
type Marquee struct {
	graphemes []string
	widths    []int
	total     int
	width     int
	offset    int
	speed     time.Duration
	last      time.Time
}

// NewMarquee creates a marquee width cells wide that advances every speed.
func NewMarquee(width int, speed time.Duration) *Marquee {
	return &Marquee{width: width, speed: speed}
}

// Reset replaces the text and rewinds to its start.
func (m *Marquee) Reset(text string, now time.Time) {
	m.graphemes = m.graphemes[:0]
	m.widths = m.widths[:0]
	m.total = 0

	g := uniseg.NewGraphemes(text + marqueePad)
	for g.Next() {
		s := g.Str()
		w := runewidth.StringWidth(s)
		m.graphemes = append(m.graphemes, s)
		m.widths = append(m.widths, w)
		m.total += w
	}
	m.offset = 0
	m.last = now
}

// Sliding reports whether the text is too wide to show at once.
func (m *Marquee) Sliding() bool {
	return m.total > m.width
}

// Visible returns the window at time now.
func (m *Marquee) Visible(now time.Time) string {
	n := len(m.graphemes)
	if n == 0 {
		return ""
	}
	if !m.Sliding() {
		return strings.Join(m.graphemes[:n-len(marqueePad)], "")
	}

	if m.speed > 0 {
		if steps := int(now.Sub(m.last) / m.speed); steps > 0 {
			m.offset = (m.offset + steps) % n
			m.last = m.last.Add(time.Duration(steps) * m.speed)
		}
	}

	var b strings.Builder
	used := 0
	for i := 0; i < n; i++ {
		j := (m.offset + i) % n
		if used+m.widths[j] > m.width {
			break
		}
		b.WriteString(m.graphemes[j])
		used += m.widths[j]
	}
	return b.String()
}
