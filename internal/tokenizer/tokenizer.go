package tokenizer

import "strings"

// CharReader is the character source consumed by ReadLine.
//
// ReadChar returns the next character, or ok == false at end of input. When
// the input at the read position is not valid UTF-8, ReadChar returns that
// single byte as c with raw set; raw bytes are always field content.
// UnreadChar pushes the last character read back onto the source; only one
// character of pushback is ever required.
type CharReader interface {
	ReadChar() (c rune, raw bool, ok bool)
	UnreadChar()
}

// noChar stands in for a raw byte when matching special characters.
const noChar rune = -1

// ReadLine reads the fields of the next logical line from src.
//
// Quotes delimit fields and are not part of the value. A backslash makes the
// following character literal and is itself kept in the value. Line endings
// inside quotes are content. \n, \r, \r\n and \n\r each end a line.
//
// It returns false only when src was already exhausted; a final line with no
// trailing terminator is returned with true. ReadLine keeps no state between
// calls.
func ReadLine(src CharReader, delim rune) ([]string, bool) {
	var (
		fields []string
		field  strings.Builder
		state  = StateStart
		last   rune
		done   bool
	)

	for !done {
		c, raw, ok := src.ReadChar()
		if !ok {
			break
		}
		key := c
		if raw {
			key = noChar
		}

		if state == StateStart {
			state = StateUnquoted
		}

		switch state {
		case StateUnquoted:
			switch key {
			case Quote:
				state = StateQuoted
			case Escape:
				field.WriteRune(c)
				state = StateUnquotedEscaped
			case delim:
				fields = append(fields, field.String())
				field.Reset()
			case LF, CR:
				last = c
				state = StateLineEnd
			default:
				writeChar(&field, c, raw)
			}

		case StateUnquotedEscaped:
			writeChar(&field, c, raw)
			state = StateUnquoted

		case StateQuoted:
			switch key {
			case Quote:
				state = StateUnquoted
			case Escape:
				field.WriteRune(c)
				state = StateQuotedEscaped
			default:
				writeChar(&field, c, raw)
			}

		case StateQuotedEscaped:
			writeChar(&field, c, raw)
			state = StateQuoted

		case StateLineEnd:
			// A terminator followed by its complement is one line ending;
			// anything else belongs to the next line.
			if !(last == CR && key == LF) && !(last == LF && key == CR) {
				src.UnreadChar()
			}
			done = true

		default:
			panic(&InvariantError{State: state})
		}
	}

	if state == StateStart {
		return nil, false
	}

	return append(fields, field.String()), true
}

func writeChar(b *strings.Builder, c rune, raw bool) {
	if raw {
		b.WriteByte(byte(c))
		return
	}
	b.WriteRune(c)
}
