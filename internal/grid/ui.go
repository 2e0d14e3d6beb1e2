package grid

import "fmt"

// Options configures a UI.
type Options struct {
	// KeepFootprint leaves a removed region's cells on screen instead of
	// blanking them with its fill glyph. Callers that always redraw the
	// replacement area can set it to save the erase.
	KeepFootprint bool

	// Tracer receives every frame's instructions just before replay.
	Tracer Tracer
}

// DefaultOptions returns the options used by New.
// Builds tagged gridtrace get a file tracer; see trace_on.go.
func DefaultOptions() Options {
	return Options{
		Tracer: defaultTracer(),
	}
}

// UI is the layout and draw-instruction engine for one width×height grid.
// Regions persist across frames; instructions live for exactly one frame.
type UI[ID comparable] struct {
	width, height int

	regions []Region[ID]
	prog    program

	keepFootprint bool
	tracer        Tracer
	onReject      func(Reject[ID])

	frame uint64
}

// New creates a UI for a width×height grid with DefaultOptions.
func New[ID comparable](width, height int) *UI[ID] {
	return NewWithOptions[ID](width, height, DefaultOptions())
}

// NewWithOptions creates a UI for a width×height grid.
func NewWithOptions[ID comparable](width, height int, opts Options) *UI[ID] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	return &UI[ID]{
		width:         width,
		height:        height,
		keepFootprint: opts.KeepFootprint,
		tracer:        opts.Tracer,
	}
}

// Size returns the grid dimensions.
func (u *UI[ID]) Size() (width, height int) {
	return u.width, u.height
}

// Frame returns the number of completed Execute calls.
func (u *UI[ID]) Frame() uint64 {
	return u.frame
}

// Pending returns a read-only view of the instructions queued so far this
// frame. The view is invalidated by the next write or Execute.
func (u *UI[ID]) Pending() FrameView {
	return FrameView{Number: u.frame, prog: &u.prog}
}

// Execute ends the frame: regions marked for removal leave the table, the
// queued instructions are replayed through b followed by a single Flush, and
// the instruction buffer is emptied. Calling it with nothing queued still
// flushes.
func (u *UI[ID]) Execute(b Backend) {
	u.prune()
	if u.tracer != nil {
		u.tracer.Trace(u.Pending())
	}
	u.prog.execute(b)
	u.prog.reset()
	u.frame++
}
