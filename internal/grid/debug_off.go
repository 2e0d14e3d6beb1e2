//go:build !griddebug

package grid

const strictRejects = false
