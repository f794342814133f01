// Package tokenizer splits a character stream into logical CSV lines.
package tokenizer

import "fmt"

// State is a position in the line tokenizer's state machine.
type State int

// Tokenizer states. Start transitions to Unquoted on the first character so
// that an empty line still produces one empty field.
const (
	StateStart State = iota
	StateUnquoted
	StateUnquotedEscaped
	StateQuoted
	StateQuotedEscaped
	StateLineEnd
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateUnquoted:
		return "unquoted"
	case StateUnquotedEscaped:
		return "unquoted-escaped"
	case StateQuoted:
		return "quoted"
	case StateQuotedEscaped:
		return "quoted-escaped"
	case StateLineEnd:
		return "line-end"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Special characters recognized by the tokenizer regardless of delimiter.
const (
	Quote  = '"'
	Escape = '\\'
	LF     = '\n'
	CR     = '\r'
)

// InvariantError reports that the state machine reached a state outside the
// enumerated set. It is a defect, never a property of the input, and is
// raised with panic.
type InvariantError struct {
	State State
}

func (e *InvariantError) Error() string {
	return "csvstream: tokenizer reached invalid state " + e.State.String()
}
