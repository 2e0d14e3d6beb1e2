package app

import (
	"errors"
	"strings"
)

// Player errors.
var (
	// ErrQuit signals that the player should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("player already running")
)

// OperationError is a failed player action, such as "play" or
// "apply layout", with an optional target like a song or file name.
type OperationError struct {
	Op     string
	Target string
	Err    error
}

// NewOperationError wraps err as a failure of op on target.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Target != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.Target)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
