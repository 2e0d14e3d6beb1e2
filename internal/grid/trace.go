package grid

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
)

// FrameView is a read-only view of one frame's instruction buffer.
type FrameView struct {
	Number uint64
	prog   *program
}

// Instructions returns the queued instructions. The slice must not be
// modified.
func (f FrameView) Instructions() []Instruction {
	return f.prog.insts
}

// Len returns the number of queued instructions.
func (f FrameView) Len() int {
	return len(f.prog.insts)
}

// BlobSize returns the number of bytes queued this frame.
func (f FrameView) BlobSize() int {
	return len(f.prog.blob)
}

// Bytes returns the bytes referenced by in.
func (f FrameView) Bytes(in Instruction) []byte {
	return f.prog.bytes(in)
}

// Tracer receives each frame just before it is replayed.
// Implementations must not retain the view after Trace returns.
type Tracer interface {
	Trace(f FrameView)
}

// TextTracer writes a human-readable dump of every frame:
//
//	0002: Instruction SI
//	      goto 12 17
//	      attr 0
//	      byte 57 5
//	      bytes: [30 30 3A 35 36]
type TextTracer struct {
	mu      sync.Mutex
	w       *bufio.Writer
	session string
	err     error
}

// NewTextTracer creates a text tracer writing to w.
func NewTextTracer(w io.Writer) *TextTracer {
	return &TextTracer{
		w:       bufio.NewWriter(w),
		session: uuid.NewString(),
	}
}

// Session returns the id stamped on every frame header.
func (t *TextTracer) Session() string {
	return t.session
}

// Err returns the first write error, if any. Tracing stops after an error.
func (t *TextTracer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Trace implements Tracer.
func (t *TextTracer) Trace(f FrameView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}

	fmt.Fprintf(t.w, "=== frame %d (session %s) ===\n", f.Number, t.session)
	fmt.Fprintf(t.w, "blob size: %d bytes\n", f.BlobSize())
	fmt.Fprintf(t.w, "instruction count: %d\n\n", f.Len())

	for i, in := range f.Instructions() {
		fmt.Fprintf(t.w, "%04d: Instruction %s\n", i, in.Placement)
		fmt.Fprintf(t.w, "      goto %d %d\n", in.X, in.Y)
		fmt.Fprintf(t.w, "      attr %d\n", in.Color)
		fmt.Fprintf(t.w, "      byte %d %d\n", in.Offset, in.Length)
		fmt.Fprintf(t.w, "      bytes: [% X]\n", f.Bytes(in))
	}
	t.w.WriteByte('\n')

	t.err = t.w.Flush()
}

// JSONTracer writes one JSON object per frame, newline delimited:
//
//	{"session":"…","frame":3,"blob_size":12,"instructions":[{"index":0,…}]}
type JSONTracer struct {
	mu      sync.Mutex
	w       io.Writer
	session string
	err     error
}

// NewJSONTracer creates a JSON tracer writing to w.
func NewJSONTracer(w io.Writer) *JSONTracer {
	return &JSONTracer{
		w:       w,
		session: uuid.NewString(),
	}
}

// Session returns the id stamped on every frame.
func (t *JSONTracer) Session() string {
	return t.session
}

// Err returns the first encoding or write error, if any.
func (t *JSONTracer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Trace implements Tracer.
func (t *JSONTracer) Trace(f FrameView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}
	doc, err := encodeFrame(t.session, f)
	if err != nil {
		t.err = fmt.Errorf("encoding frame %d: %w", f.Number, err)
		return
	}
	doc = append(doc, '\n')
	if _, err := t.w.Write(doc); err != nil {
		t.err = err
	}
}

func encodeFrame(session string, f FrameView) ([]byte, error) {
	doc := []byte(`{"instructions":[]}`)
	var err error
	set := func(doc []byte, path string, v any) []byte {
		if err != nil {
			return doc
		}
		var out []byte
		out, err = sjson.SetBytes(doc, path, v)
		return out
	}

	doc = set(doc, "session", session)
	doc = set(doc, "frame", f.Number)
	doc = set(doc, "blob_size", f.BlobSize())

	for i, in := range f.Instructions() {
		rows := 1
		if r, ok := in.Placement.(Repeated); ok {
			rows = r.Rows
		}
		obj := []byte(`{}`)
		obj = set(obj, "index", i)
		obj = set(obj, "placement", in.Placement.String())
		obj = set(obj, "rows", rows)
		obj = set(obj, "x", in.X)
		obj = set(obj, "y", in.Y)
		obj = set(obj, "color", uint32(in.Color))
		obj = set(obj, "offset", in.Offset)
		obj = set(obj, "length", in.Length)
		obj = set(obj, "bytes", fmt.Sprintf("%X", f.Bytes(in)))
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, "instructions.-1", obj)
	}
	return doc, err
}
