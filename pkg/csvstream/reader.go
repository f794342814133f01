package csvstream

import (
	"errors"
	"io"
	"iter"

	"github.com/shapestone/shape-csvstream/internal/source"
	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// Reader pulls rows from a delimited text source one at a time.
//
// A Reader must not be copied: it holds the only read position over its
// source.
type Reader struct {
	src    *source.Source
	opts   Options
	header []string
	line   int
	done   bool
}

// Read reads the next row as a Row.
//
// At end of input Read returns (nil, io.EOF). In strict mode a line whose
// field count differs from the header yields a *ColumnCountError; that line
// is consumed and the next call reads the line after it.
func (r *Reader) Read() (Row, error) {
	fields, err := r.nextLine()
	if err != nil {
		return nil, err
	}
	return newRow(r.header, fields), nil
}

// ReadOrdered reads the next row as an OrderedRow. It follows the same rules
// as Read.
func (r *Reader) ReadOrdered() (OrderedRow, error) {
	fields, err := r.nextLine()
	if err != nil {
		return nil, err
	}
	return newOrderedRow(r.header, fields), nil
}

// All returns an iterator over the remaining rows. Column count errors are
// yielded and iteration continues; any other error is yielded once and ends
// iteration.
func (r *Reader) All() iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(row, err) {
				return
			}
			if err != nil && !errors.Is(err, ErrFieldCount) {
				return
			}
		}
	}
}

// nextLine tokenizes one logical line and reconciles it with the header.
func (r *Reader) nextLine() ([]string, error) {
	if r.src.Exhausted() && r.src.Err() == nil {
		r.done = true
		return nil, io.EOF
	}
	fields, ok := tokenizer.ReadLine(r.src, r.opts.Delimiter)
	if err := r.src.Err(); err != nil {
		r.done = true
		return nil, err
	}
	if !ok {
		r.done = true
		return nil, io.EOF
	}
	r.line++
	return r.reconcile(fields)
}

// reconcile checks or coerces fields to the header width.
func (r *Reader) reconcile(fields []string) ([]string, error) {
	want := len(r.header)
	got := len(fields)
	if got == want {
		return fields, nil
	}

	if r.opts.Strict {
		err := &ColumnCountError{
			Name: r.opts.Name,
			Line: r.line,
			Want: want,
			Got:  got,
		}
		log.Debugf("%s", err)
		return nil, err
	}

	log.Debugf("%s:L%d: coercing %d fields to %d", r.opts.Name, r.line, got, want)
	if got > want {
		return fields[:want], nil
	}
	return append(fields, make([]string, want-got)...), nil
}

// Line returns the number of data lines read so far, including lines
// rejected for their field count. The header is line 0.
func (r *Reader) Line() int {
	return r.line
}

// Name returns the source name used in error messages.
func (r *Reader) Name() string {
	return r.opts.Name
}

// Strict reports whether the reader rejects lines with the wrong field count.
func (r *Reader) Strict() bool {
	return r.opts.Strict
}

// Good reports whether more rows may be available: end of input has not been
// reached and the source is healthy, that is open and free of read errors.
func (r *Reader) Good() bool {
	return !r.done && r.src.Good()
}

// Err returns the first error reported by the underlying stream, if any.
// End of input is not an error.
func (r *Reader) Err() error {
	return r.src.Err()
}

// Close releases the source. A file opened by Open is closed exactly once;
// a reader passed to NewReader is left open. Close is safe to call more than
// once.
func (r *Reader) Close() error {
	r.done = true
	return r.src.Close()
}
