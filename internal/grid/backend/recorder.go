package backend

import (
	"fmt"
	"strings"

	"github.com/dshills/neocrystal/internal/grid"
)

// OpKind identifies a recorded backend call.
type OpKind int

const (
	OpCursor OpKind = iota
	OpSpan
	OpFlush
)

// String returns the call name.
func (k OpKind) String() string {
	switch k {
	case OpCursor:
		return "cursor"
	case OpSpan:
		return "span"
	case OpFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Op is one recorded call. Text is a copy of the span bytes.
type Op struct {
	Kind  OpKind
	X, Y  int
	Text  string
	Color grid.Color
}

// String formats the op for test failure messages.
func (o Op) String() string {
	switch o.Kind {
	case OpCursor:
		return fmt.Sprintf("cursor(%d,%d)", o.X, o.Y)
	case OpSpan:
		return fmt.Sprintf("span(%q,%d)", o.Text, o.Color)
	default:
		return o.Kind.String()
	}
}

// Recorder is a headless backend that records every call.
type Recorder struct {
	ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Cursor records a cursor move.
func (r *Recorder) Cursor(x, y int) {
	r.ops = append(r.ops, Op{Kind: OpCursor, X: x, Y: y})
}

// Span records a copy of b and its color.
func (r *Recorder) Span(b []byte, c grid.Color) {
	r.ops = append(r.ops, Op{Kind: OpSpan, Text: string(b), Color: c})
}

// Flush records a flush.
func (r *Recorder) Flush() {
	r.ops = append(r.ops, Op{Kind: OpFlush})
}

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// String renders the call log one op per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, op := range r.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
