package backend

import "testing"

func TestRecorderOps(t *testing.T) {
	r := NewRecorder()

	r.Cursor(1, 2)
	r.Span([]byte("x"), 3)
	r.Flush()

	want := []Op{
		{Kind: OpCursor, X: 1, Y: 2},
		{Kind: OpSpan, Text: "x", Color: 3},
		{Kind: OpFlush},
	}
	ops := r.Ops()
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d:\n%s", len(ops), len(want), r)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestRecorderCopiesSpan(t *testing.T) {
	r := NewRecorder()
	buf := []byte("ab")

	r.Span(buf, 0)
	buf[0] = 'z'

	if r.Ops()[0].Text != "ab" {
		t.Error("recorder must copy span bytes")
	}
}

func TestRecorderCountAndReset(t *testing.T) {
	r := NewRecorder()
	r.Cursor(0, 0)
	r.Cursor(0, 1)
	r.Flush()

	if r.Count(OpCursor) != 2 {
		t.Errorf("cursor count = %d, want 2", r.Count(OpCursor))
	}
	if r.Count(OpFlush) != 1 {
		t.Errorf("flush count = %d, want 1", r.Count(OpFlush))
	}

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Error("reset should clear ops")
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Op{Kind: OpCursor, X: 3, Y: 4}, "cursor(3,4)"},
		{Op{Kind: OpSpan, Text: "hi", Color: 2}, `span("hi",2)`},
		{Op{Kind: OpFlush}, "flush"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
