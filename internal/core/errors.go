package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSourceFile is returned when no entry in the source directory has the prefix
	ErrNoSourceFile = errors.New("no matching log file")

	// ErrInvalidEncoding is returned for source files that are not valid UTF-8
	ErrInvalidEncoding = errors.New("log file is not valid UTF-8")
)

// LineError reports a log line that is not a single JSON value.
// Line is 1-based, Offset counts bytes within the line and FileOffset
// bytes from the start of the file.
type LineError struct {
	Line       int
	Offset     int64
	FileOffset int64
	Err        error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d, offset %d (file offset %d): %v", e.Line, e.Offset, e.FileOffset, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// LiteralError reports a syntax error in a joined array literal
type LiteralError struct {
	Offset int64
	Err    error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("invalid log array at offset %d: %v", e.Offset, e.Err)
}

func (e *LiteralError) Unwrap() error { return e.Err }

type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
