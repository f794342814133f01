// Package csvstream reads delimited text as a stream of rows keyed by a
// header line.
//
// The first logical line is always the header. Each later line is returned,
// one per call, either as a Row (column name to value) or as an OrderedRow
// (one name/value pair per header position, duplicates kept).
//
// # Format
//
//   - Fields are separated by a single delimiter character (',' by default).
//   - A field may be wrapped in double quotes; quoted text may contain the
//     delimiter and line breaks.
//   - A backslash makes the next character literal. The backslash itself is
//     kept in the value.
//   - Lines end with \n, \r, \r\n or \n\r. The last line needs no terminator.
//
// # Thread Safety
//
// A Reader owns a read position over its source and is not safe for
// concurrent use. Use one Reader per goroutine and per source.
//
// # Example
//
//	r, err := csvstream.Open("data.csv", csvstream.DefaultOptions())
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//
//	for {
//	    row, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error; a *ColumnCountError leaves r usable
//	    }
//	    fmt.Println(row["name"])
//	}
package csvstream

import (
	"io"

	"github.com/tliron/commonlog"

	"github.com/shapestone/shape-csvstream/internal/source"
)

// DefaultStreamName names sources created by NewReader when Options.Name is
// empty.
const DefaultStreamName = "[no filename]"

var log = commonlog.GetLogger("csvstream")

// openSource opens the file behind Open.
var openSource = source.Open

// Open opens the named file and reads its header. The file is owned by the
// returned Reader and released by Close. If the header cannot be read the
// file is closed before Open returns.
func Open(name string, opts Options) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	src, err := openSource(name)
	if err != nil {
		return nil, &OpenError{Name: name, Err: err}
	}
	log.Debugf("opened %s", name)

	if opts.Name == "" {
		opts.Name = name
	}
	r, err := newReader(src, opts)
	if err != nil {
		if cerr := src.Close(); cerr != nil {
			log.Debugf("closing %s: %v", name, cerr)
		}
		return nil, err
	}
	return r, nil
}

// NewReader reads the header from rd and returns a Reader over the rest of
// it. The Reader borrows rd and never closes it.
func NewReader(rd io.Reader, opts Options) (*Reader, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		opts.Name = DefaultStreamName
	}
	return newReader(source.Borrow(opts.Name, rd), opts)
}

func newReader(src *source.Source, opts Options) (*Reader, error) {
	r := &Reader{
		src:  src,
		opts: opts,
	}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	return r, nil
}
