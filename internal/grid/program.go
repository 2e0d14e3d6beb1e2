package grid

import "fmt"

// Placement is how an instruction is replayed. It is either Single or
// Repeated; no other implementations exist.
type Placement interface {
	fmt.Stringer
	placement()
}

// Single places the span once at the instruction target.
type Single struct{}

// Repeated places the same span on Rows consecutive rows starting at the
// instruction target, moving the cursor before each one.
type Repeated struct {
	Rows int
}

func (Single) placement()   {}
func (Repeated) placement() {}

func (Single) String() string { return "SI" }

func (r Repeated) String() string { return fmt.Sprintf("SIM(%d)", r.Rows) }

// Instruction is one queued draw: a target cell, a byte range inside the
// frame's blob, a color, and a placement.
type Instruction struct {
	X, Y      int
	Offset    int
	Length    int
	Color     Color
	Placement Placement
}

// program is the per-frame instruction buffer. The blob only grows during a
// frame and is read-only while execute runs.
type program struct {
	blob  []byte
	insts []Instruction
}

func (p *program) push(x, y, length int, c Color, pl Placement) {
	p.insts = append(p.insts, Instruction{
		X:         x,
		Y:         y,
		Offset:    len(p.blob),
		Length:    length,
		Color:     c,
		Placement: pl,
	})
}

// place stores s once and draws it once at (x, y).
func (p *program) place(s string, x, y int, c Color) {
	p.push(x, y, len(s), c, Single{})
	p.blob = append(p.blob, s...)
}

// placeRows stores s once and draws it on rows y through y+n-1.
func (p *program) placeRows(s string, x, y int, c Color, n int) {
	p.push(x, y, len(s), c, Repeated{Rows: n})
	p.blob = append(p.blob, s...)
}

// placeCols stores s n times back to back and draws the run once. The
// expansion happens here so the backend sees one contiguous span.
func (p *program) placeCols(s string, x, y int, c Color, n int) {
	p.push(x, y, len(s)*n, c, Single{})
	p.expand(s, n)
}

// placeBlock stores s cols times back to back and draws the run on rows
// consecutive rows.
func (p *program) placeBlock(s string, x, y int, c Color, rows, cols int) {
	p.push(x, y, len(s)*cols, c, Repeated{Rows: rows})
	p.expand(s, cols)
}

func (p *program) expand(s string, n int) {
	for range n {
		p.blob = append(p.blob, s...)
	}
}

// bytes returns the span referenced by in. The capacity is clipped so a
// backend appending to it cannot touch neighbouring spans.
func (p *program) bytes(in Instruction) []byte {
	end := in.Offset + in.Length
	return p.blob[in.Offset:end:end]
}

func (p *program) execute(b Backend) {
	for _, in := range p.insts {
		span := p.bytes(in)
		switch pl := in.Placement.(type) {
		case Single:
			b.Cursor(in.X, in.Y)
			b.Span(span, in.Color)
		case Repeated:
			for i := range pl.Rows {
				b.Cursor(in.X, in.Y+i)
				b.Span(span, in.Color)
			}
		}
	}
	b.Flush()
}

func (p *program) reset() {
	p.blob = p.blob[:0]
	p.insts = p.insts[:0]
}
