package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates the loaded settings are unusable.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownColor indicates a palette key that is not a color id.
	ErrUnknownColor = errors.New("unknown palette color id")
)

// ParseError is a decode failure with the position go-toml reported.
// Line and Column are zero when unknown.
type ParseError struct {
	Path         string
	Line, Column int
	Message      string
	Err          error
}

func (e *ParseError) Error() string {
	where := e.Path
	switch {
	case e.Line > 0 && e.Column > 0:
		where = fmt.Sprintf("%s:%d:%d", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return "config " + where + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError names the setting that was rejected, as a dotted path
// such as "grid.width". It matches ErrValidationFailed.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s %s, got %v", e.Path, e.Message, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
