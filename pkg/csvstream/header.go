package csvstream

import (
	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// readHeader tokenizes the first logical line and fixes the row width.
func (r *Reader) readHeader() error {
	fields, ok := tokenizer.ReadLine(r.src, r.opts.Delimiter)
	if err := r.src.Err(); err != nil {
		return &HeaderError{Name: r.opts.Name, Err: err}
	}
	if !ok {
		return &HeaderError{Name: r.opts.Name, Err: ErrEmptyInput}
	}

	if conv := r.opts.HeaderConverter; conv != nil {
		for i, name := range fields {
			fields[i] = conv(name)
		}
	}

	r.header = fields
	log.Debugf("%s: header has %d columns", r.opts.Name, len(fields))
	return nil
}

// Header returns the column names in order. The result is a copy; every call
// returns the same names.
func (r *Reader) Header() []string {
	header := make([]string, len(r.header))
	copy(header, r.header)
	return header
}

// Width returns the number of columns in the header.
func (r *Reader) Width() int {
	return len(r.header)
}
