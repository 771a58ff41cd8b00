// Package errors provides structured error types for fretboard.
//
// Errors carry a machine-readable [Code] so callers (the CLI, the site
// generator) can decide how to react without matching on message text:
//
//	t, err := tuning.Parse(arg)
//	if errors.Is(err, errors.ErrCodeEmptyTuning) {
//	    // nothing to draw
//	}
//
// Only an input with no notes at all is fatal to a chart; characters that
// are not notes are skipped while scanning and never surface as errors.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Tuning and chart input
	ErrCodeMissingArgument  Code = "MISSING_ARGUMENT"
	ErrCodeEmptyTuning      Code = "EMPTY_TUNING"
	ErrCodeUnknownNote      Code = "UNKNOWN_NOTE"
	ErrCodeUnknownScale     Code = "UNKNOWN_SCALE"
	ErrCodeInvalidFrets     Code = "INVALID_FRETS"
	ErrCodeIntervalOverflow Code = "INTERVAL_OUT_OF_RANGE"

	// Files, flags and config
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string // shown to users without the code
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether any coded error in err's chain has the given code,
// so a FILE_NOT_FOUND wrapping an INVALID_INPUT matches both.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost coded error in err's chain,
// or "" when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost coded error, without
// its code, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
