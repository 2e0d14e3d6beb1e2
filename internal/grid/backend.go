package grid

// Color is an opaque color identifier passed through to the Backend.
type Color uint32

// FillColor is the color used for row fills and region erasure.
const FillColor Color = 0

// Backend is a rendering target driven by Execute.
// Implementations must not reference the engine's internals beyond these calls.
type Backend interface {
	// Cursor moves the draw position.
	Cursor(x, y int)

	// Span draws b at the draw position using color c.
	// b is valid UTF-8 and is only valid for the duration of the call.
	Span(b []byte, c Color)

	// Flush commits the frame to the display.
	// Called exactly once per Execute.
	Flush()
}
