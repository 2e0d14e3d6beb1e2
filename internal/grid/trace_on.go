//go:build gridtrace

package grid

import (
	"os"
	"path/filepath"
)

// TraceFile is where gridtrace builds dump instructions.
var TraceFile = filepath.Join(os.TempDir(), "grid_instructions.log")

func defaultTracer() Tracer {
	f, err := os.Create(TraceFile)
	if err != nil {
		return nil
	}
	return NewTextTracer(f)
}
