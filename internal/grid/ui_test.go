package grid

import (
	"testing"
)

func TestExecuteEmptiesBufferAndFlushesOnce(t *testing.T) {
	ui := newWriteUI()
	ui.Write("five", 0, 0, "AB", 1)
	ui.Write("a", 0, 0, "hello", 2)
	ui.WriteRepeatedCols("a", 0, 0, "-", 1, 10)
	ui.Inject(0, 5, "x", 3)

	log := &callLog{}
	ui.Execute(log)

	if len(ui.prog.insts) != 0 || len(ui.prog.blob) != 0 {
		t.Errorf("after Execute: %d instructions, %d bytes; want none", len(ui.prog.insts), len(ui.prog.blob))
	}
	if n := log.count("flush"); n != 1 {
		t.Errorf("flushes = %d, want 1", n)
	}

	ui.Execute(log)
	if n := log.count("flush"); n != 2 {
		t.Errorf("second Execute should flush again, flushes = %d", n)
	}
	if ui.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", ui.Frame())
	}
}

func TestOverlappingDeclareRemovesAfterExecute(t *testing.T) {
	ui := New[int](20, 5)
	ui.Declare(1, Span{0, 10}, Span{0, 3})
	ui.Execute(discard{})

	ui.Declare(2, Span{9, 5}, Span{2, 1})
	ui.Execute(discard{})

	regions := ui.Regions()
	if len(regions) != 1 || regions[0].ID != 2 {
		t.Errorf("regions = %+v, want only 2", regions)
	}
	if len(ui.regions) != 1 {
		t.Errorf("table should be pruned, has %d entries", len(ui.regions))
	}
}

func TestWritesBeforeReplacementStillExecute(t *testing.T) {
	ui := New[string](10, 1)
	ui.Declare("old", Span{0, 10}, Span{0, 1})
	ui.Write("old", 0, 0, "stale", 1)

	ui.Declare("new", Span{0, 4}, Span{0, 1})
	ui.Write("new", 0, 0, "ok", 2)

	log := &callLog{}
	ui.Execute(log)

	assertCalls(t, log,
		`cursor 0 0`, `span "          " 0`,
		`cursor 0 0`, `span "stale" 1`,
		`cursor 0 0`, `span "          " 0`,
		`cursor 0 0`, `span "    " 0`,
		`cursor 0 0`, `span "ok" 2`,
		`flush`,
	)
}

func TestHelloThenHiLeavesNoResidue(t *testing.T) {
	ui := New[string](12, 2)
	ui.Declare("A", Span{2, 10}, Span{1, 1})

	ui.Write("A", 0, 0, "hello", 1)
	ui.Execute(discard{})

	ui.Write("A", 0, 0, "hi", 1)
	view := ui.Pending()
	insts := view.Instructions()
	if len(insts) != 2 {
		t.Fatalf("frame 2 should queue fill + text, got %d", len(insts))
	}
	if insts[0].X != 2 || insts[0].Length != 10 || string(view.Bytes(insts[0])) != "          " {
		t.Errorf("fill = %+v %q", insts[0], view.Bytes(insts[0]))
	}
	if string(view.Bytes(insts[1])) != "hi" {
		t.Errorf("text = %q", view.Bytes(insts[1]))
	}

	log := &callLog{}
	ui.Execute(log)
	assertCalls(t, log,
		`cursor 2 1`, `span "          " 0`,
		`cursor 2 1`, `span "hi" 1`,
		`flush`,
	)
}

func TestInjectIgnoresRegions(t *testing.T) {
	ui := New[string](10, 5)
	ui.Declare("a", Span{0, 10}, Span{0, 5})

	ui.Inject(3, 0, "┌", 0)
	ui.InjectRepeatedCols(4, 0, "─", 0, 5)
	ui.InjectRepeatedRows(0, 1, "│", 0, 3)
	ui.InjectBlock(1, 1, "#", 2, 2, 3)

	insts := ui.prog.insts
	if len(insts) != 4 {
		t.Fatalf("expected 4 instructions, got %d", len(insts))
	}
	if insts[1].Length != 5*len("─") || insts[1].Placement != (Single{}) {
		t.Errorf("cols run = %+v", insts[1])
	}
	if insts[2].Placement != (Repeated{Rows: 3}) || insts[2].Length != len("│") {
		t.Errorf("rows run = %+v", insts[2])
	}
	if insts[3].Placement != (Repeated{Rows: 2}) || string(ui.prog.bytes(insts[3])) != "###" {
		t.Errorf("block = %+v", insts[3])
	}
}

func TestInjectDegenerateIsNoop(t *testing.T) {
	ui := New[string](10, 5)
	ui.Inject(0, 0, "", 0)
	ui.InjectRepeatedCols(0, 0, "-", 0, 0)
	ui.InjectRepeatedRows(0, 0, "", 0, 3)
	ui.InjectBlock(0, 0, "x", 0, 0, 2)

	if len(ui.prog.insts) != 0 {
		t.Errorf("degenerate injects should queue nothing, got %d", len(ui.prog.insts))
	}
}

func TestExecuteTracesBeforeReplay(t *testing.T) {
	tr := &captureTracer{}
	ui := NewWithOptions[string](10, 1, Options{Tracer: tr})
	ui.Declare("a", Span{0, 10}, Span{0, 1})
	ui.Write("a", 0, 0, "0123456789", 1)

	ui.Execute(discard{})
	ui.Execute(discard{})

	if len(tr.frames) != 2 {
		t.Fatalf("traced %d frames, want 2", len(tr.frames))
	}
	if tr.frames[0] != 0 || tr.counts[0] != 1 {
		t.Errorf("frame 0 traced %d instructions", tr.counts[0])
	}
	if tr.frames[1] != 1 || tr.counts[1] != 0 {
		t.Errorf("frame 1 traced %d instructions", tr.counts[1])
	}
}

func TestNewInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative size")
		}
	}()
	New[string](-1, 5)
}

type captureTracer struct {
	frames []uint64
	counts []int
}

func (c *captureTracer) Trace(f FrameView) {
	c.frames = append(c.frames, f.Number)
	c.counts = append(c.counts, f.Len())
}
