// Package source provides the character source read by the line tokenizer.
//
// A Source either owns a file it opened itself or borrows a caller's
// io.Reader. Characters are decoded as UTF-8; bytes that do not decode are
// passed through unchanged so no input is lost.
package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"
)

// Source is a sequential character source with one character of pushback.
// It is not safe for concurrent use.
type Source struct {
	name   string
	br     *bufio.Reader
	closer io.Closer
	err    error

	last       rune
	lastRaw    bool
	pushedBack bool
	exhausted  bool
	closed     bool
}

// Open opens the named file. The returned Source owns the file and closes it
// in Close.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return Own(name, f), nil
}

// Own wraps rc and takes ownership of it: Close closes rc exactly once.
func Own(name string, rc io.ReadCloser) *Source {
	s := Borrow(name, rc)
	s.closer = rc
	return s
}

// Borrow wraps r without taking ownership of it. Close never closes r.
func Borrow(name string, r io.Reader) *Source {
	return &Source{
		name: name,
		br:   bufio.NewReader(r),
	}
}

// Name returns the name used in diagnostics.
func (s *Source) Name() string {
	return s.name
}

// ReadChar returns the next character, or ok == false at end of input or
// after a read error. A byte that is not valid UTF-8 is returned on its own
// with raw set.
func (s *Source) ReadChar() (c rune, raw bool, ok bool) {
	if s.pushedBack {
		s.pushedBack = false
		return s.last, s.lastRaw, true
	}
	if s.closed || s.exhausted || s.err != nil {
		return 0, false, false
	}

	r, size, err := s.br.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.exhausted = true
		return 0, false, false
	}

	raw = r == utf8.RuneError && size == 1
	if raw {
		// ReadRune consumed exactly the offending byte.
		if err := s.br.UnreadRune(); err != nil {
			s.err = err
			return 0, false, false
		}
		b, err := s.br.ReadByte()
		if err != nil {
			s.err = err
			return 0, false, false
		}
		r = rune(b)
	}

	s.last, s.lastRaw = r, raw
	return r, raw, true
}

// UnreadChar pushes the most recently read character back. Only one
// character can be pending at a time.
func (s *Source) UnreadChar() {
	s.pushedBack = true
}

// Exhausted reports whether a read has hit end of input and nothing is
// pending.
func (s *Source) Exhausted() bool {
	return s.exhausted && !s.pushedBack
}

// Err returns the first error reported by the underlying reader other than
// io.EOF.
func (s *Source) Err() error {
	return s.err
}

// Good reports whether the source is open and no read error has occurred.
// Reaching end of input does not make a source bad; see Exhausted.
func (s *Source) Good() bool {
	return !s.closed && s.err == nil
}

// Close releases an owned reader exactly once. Closing a borrowed source only
// marks it closed.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pushedBack = false
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
