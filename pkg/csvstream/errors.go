package csvstream

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

var (
	// ErrEmptyInput indicates the source had no header line.
	ErrEmptyInput = errors.New("no header line")

	// ErrFieldCount indicates a data line has the wrong number of fields.
	ErrFieldCount = errors.New("number of items in row does not match header")
)

// InvariantError is the value panicked with when the tokenizer reaches a
// state it does not define. No input, valid or malformed, should cause it.
type InvariantError = tokenizer.InvariantError

// OpenError reports that a named source could not be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("csvstream: error opening file %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// HeaderError reports that the header line could not be read.
type HeaderError struct {
	Name string
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("csvstream: error reading header of %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *HeaderError) Unwrap() error {
	return e.Err
}

// ColumnCountError reports a data line whose field count differs from the
// header width. It is only returned in strict mode. The reader stays usable:
// the offending line is skipped and the next read continues after it.
type ColumnCountError struct {
	// Name is the source name.
	Name string
	// Line is the logical line number; the first data line is 1.
	Line int
	// Want is the header width.
	Want int
	// Got is the number of fields on the line.
	Got int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("csvstream: %s:L%d: %v (header has %d, row has %d)",
		e.Name, e.Line, ErrFieldCount, e.Want, e.Got)
}

// Unwrap returns ErrFieldCount.
func (e *ColumnCountError) Unwrap() error {
	return ErrFieldCount
}

// BadLineMode specifies how a Scanner handles lines with the wrong number of
// fields.
type BadLineMode int

const (
	// BadLineModeError stops scanning and reports the error (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn logs a warning and continues with the next line.
	BadLineModeWarn
	// BadLineModeSkip silently continues with the next line.
	BadLineModeSkip
)

// String returns the string representation of BadLineMode.
func (m BadLineMode) String() string {
	switch m {
	case BadLineModeError:
		return "error"
	case BadLineModeWarn:
		return "warn"
	case BadLineModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("BadLineMode(%d)", int(m))
	}
}

// ParseBadLineMode returns the BadLineMode named by s.
func ParseBadLineMode(s string) (BadLineMode, error) {
	switch s {
	case "error":
		return BadLineModeError, nil
	case "warn":
		return BadLineModeWarn, nil
	case "skip":
		return BadLineModeSkip, nil
	default:
		return BadLineModeError, &OptionsError{Field: "BadLineMode", Message: fmt.Sprintf("unknown mode %q", s)}
	}
}
