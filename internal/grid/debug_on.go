//go:build griddebug

package grid

// Layout mistakes surface as panics in griddebug builds instead of blank rows.
const strictRejects = true
