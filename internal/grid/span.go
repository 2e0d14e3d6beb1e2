package grid

// Span is a one-dimensional extent on the grid: Len cells starting at Start.
type Span struct {
	Start int
	Len   int
}

// End returns the first cell past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Overlaps reports whether two spans share at least one cell.
// Spans are half-open, so empty spans never overlap anything.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End() && other.Start < s.End()
}

// fits reports whether n cells starting at absolute position at lie inside s.
func (s Span) fits(at, n int) bool {
	return n >= 0 && at >= s.Start && at+n <= s.End()
}

// within reports whether s lies inside [0, limit).
func (s Span) within(limit int) bool {
	return s.Start >= 0 && s.Len >= 0 && s.End() <= limit
}
