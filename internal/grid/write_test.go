package grid

import (
	"testing"
)

func newWriteUI() *UI[string] {
	ui := New[string](20, 6)
	ui.Declare("five", Span{0, 5}, Span{0, 1})
	ui.Declare("a", Span{2, 10}, Span{1, 1})
	ui.Declare("col", Span{15, 1}, Span{2, 4})
	ui.Declare("box", Span{0, 10}, Span{2, 4})
	return ui
}

func frameBytes(ui *UI[string], i int) string {
	return string(ui.prog.bytes(ui.prog.insts[i]))
}

func TestWriteShortTextFillsRowFirst(t *testing.T) {
	ui := newWriteUI()
	ui.Write("five", 0, 0, "AB", 2)

	insts := ui.prog.insts
	if len(insts) != 2 {
		t.Fatalf("expected fill + text, got %d instructions", len(insts))
	}
	fill, text := insts[0], insts[1]
	if fill.Length != 5 || fill.X != 0 || fill.Color != FillColor {
		t.Errorf("fill = %+v", fill)
	}
	if frameBytes(ui, 0) != "     " {
		t.Errorf("fill bytes = %q", frameBytes(ui, 0))
	}
	if text.Length != 2 || text.Color != 2 {
		t.Errorf("text = %+v", text)
	}
	if fill.Y != text.Y {
		t.Errorf("fill row %d and text row %d differ", fill.Y, text.Y)
	}
}

func TestWriteFullWidthSkipsFill(t *testing.T) {
	ui := newWriteUI()
	ui.Write("five", 0, 0, "ABCDE", 1)

	if len(ui.prog.insts) != 1 {
		t.Fatalf("full-width text should be a single instruction, got %d", len(ui.prog.insts))
	}
	if frameBytes(ui, 0) != "ABCDE" {
		t.Errorf("bytes = %q", frameBytes(ui, 0))
	}
}

func TestWriteOffsetUsesRegionOrigin(t *testing.T) {
	ui := newWriteUI()
	ui.Write("a", 3, 0, "xy", 1)

	text := ui.prog.insts[1]
	if text.X != 5 || text.Y != 1 {
		t.Errorf("text target = (%d, %d), want (5, 1)", text.X, text.Y)
	}
	fill := ui.prog.insts[0]
	if fill.X != 2 {
		t.Errorf("fill should start at the region origin, got %d", fill.X)
	}
}

func TestWriteEmptyTextBlanksRow(t *testing.T) {
	ui := newWriteUI()
	ui.Write("a", 0, 0, "", 1)

	if len(ui.prog.insts) != 1 {
		t.Fatalf("empty text should only fill, got %d instructions", len(ui.prog.insts))
	}
	if frameBytes(ui, 0) != "          " {
		t.Errorf("fill = %q", frameBytes(ui, 0))
	}
}

func TestBlankRow(t *testing.T) {
	ui := New[string](20, 6)
	ui.DeclareFill("rule", Span{1, 3}, Span{0, 2}, "─")

	ui.BlankRow("rule", 1)

	in := ui.prog.insts[0]
	if in.X != 1 || in.Y != 1 {
		t.Errorf("target = (%d, %d)", in.X, in.Y)
	}
	if frameBytes(ui, 0) != "───" {
		t.Errorf("fill = %q", frameBytes(ui, 0))
	}
}

func TestWriteRepeatedColsSingleSpan(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedCols("five", 0, 0, "-", 1, 5)

	if len(ui.prog.insts) != 1 {
		t.Fatalf("expected one instruction, got %d", len(ui.prog.insts))
	}
	in := ui.prog.insts[0]
	if in.Length != 5*len("-") || in.Placement != (Single{}) {
		t.Errorf("instruction = %+v", in)
	}
	if frameBytes(ui, 0) != "-----" {
		t.Errorf("bytes = %q", frameBytes(ui, 0))
	}
}

func TestWriteRepeatedColsShortRunFills(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedCols("a", 1, 0, "=", 1, 4)

	insts := ui.prog.insts
	if len(insts) != 2 {
		t.Fatalf("expected fill + run, got %d", len(insts))
	}
	if insts[0].Length != 10 {
		t.Errorf("fill length = %d, want 10", insts[0].Length)
	}
	if insts[1].X != 3 || insts[1].Length != 4 {
		t.Errorf("run = %+v", insts[1])
	}
}

func TestWriteRepeatedColsZeroCountFills(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedCols("five", 0, 0, "-", 1, 0)

	if len(ui.prog.insts) != 1 || frameBytes(ui, 0) != "     " {
		t.Error("zero-length run should only blank the row")
	}
}

func TestWriteRepeatedRows(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedRows("col", 0, 0, "|", 4, 3)

	if len(ui.prog.insts) != 1 {
		t.Fatalf("expected one instruction, got %d", len(ui.prog.insts))
	}
	in := ui.prog.insts[0]
	if in.Placement != (Repeated{Rows: 3}) {
		t.Errorf("placement = %v, want SIM(3)", in.Placement)
	}

	log := &callLog{}
	ui.Execute(log)
	assertCalls(t, log,
		`cursor 15 2`, `span "|" 4`,
		`cursor 15 3`, `span "|" 4`,
		`cursor 15 4`, `span "|" 4`,
		`flush`,
	)
}

func TestWriteRepeatedRowsFillsEveryRow(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedRows("box", 2, 1, "ab", 1, 2)

	insts := ui.prog.insts
	if len(insts) != 2 {
		t.Fatalf("expected fill + text, got %d", len(insts))
	}
	if insts[0].Placement != (Repeated{Rows: 2}) || insts[0].Y != 3 || insts[0].X != 0 {
		t.Errorf("fill = %+v", insts[0])
	}
	if insts[1].X != 2 || insts[1].Y != 3 {
		t.Errorf("text = %+v", insts[1])
	}
}

func TestWriteRepeatedRowsZeroCount(t *testing.T) {
	ui := newWriteUI()
	ui.WriteRepeatedRows("box", 0, 0, "x", 1, 0)

	if len(ui.prog.insts) != 0 {
		t.Error("zero rows should queue nothing")
	}
}

func TestRejectReasonString(t *testing.T) {
	tests := []struct {
		r    RejectReason
		want string
	}{
		{RejectUnknownRegion, "unknown region"},
		{RejectRowOutOfRange, "row out of range"},
		{RejectOverflow, "overflow"},
		{RejectRowRunOverflow, "row run overflow"},
		{RejectReason(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
