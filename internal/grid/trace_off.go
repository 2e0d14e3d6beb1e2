//go:build !gridtrace

package grid

func defaultTracer() Tracer {
	return nil
}
