package csvstream

import (
	"errors"
	"io"
)

// Scanner provides a Scan/Record loop over a Reader.
//
// Example usage:
//
//	r, _ := csvstream.NewReader(file, csvstream.DefaultOptions())
//	scanner := csvstream.NewScanner(r).SetOnBadLine(csvstream.BadLineModeWarn)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    name, _ := record.GetByName("name")
//	    fmt.Println(name)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	reader    *Reader
	onBadLine BadLineMode
	record    OrderedRow
	skipped   int
	err       error
}

// NewScanner creates a Scanner reading from r. By default a line with the
// wrong number of fields stops the scan.
func NewScanner(r *Reader) *Scanner {
	return &Scanner{reader: r}
}

// SetOnBadLine sets how lines with the wrong number of fields are handled.
// Returns the Scanner for method chaining.
func (s *Scanner) SetOnBadLine(mode BadLineMode) *Scanner {
	s.onBadLine = mode
	return s
}

// Scan advances the scanner to the next record.
// It returns false when there are no more records or an error occurs.
// After Scan returns false, the Err method will return any error that occurred.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	for {
		record, err := s.reader.ReadOrdered()
		if err == nil {
			s.record = record
			return true
		}

		s.record = nil
		if err == io.EOF {
			return false
		}

		var countErr *ColumnCountError
		if !errors.As(err, &countErr) {
			s.err = err
			return false
		}

		switch s.onBadLine {
		case BadLineModeWarn:
			log.Warningf("skipping line: %s", countErr)
		case BadLineModeSkip:
		default:
			s.err = err
			return false
		}
		s.skipped++
	}
}

// Record returns the current record.
// This should only be called after Scan returns true.
func (s *Scanner) Record() OrderedRow {
	return s.record
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil at end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Headers returns the column names of the underlying Reader.
func (s *Scanner) Headers() []string {
	return s.reader.Header()
}

// Skipped returns the number of lines dropped in warn or skip mode.
func (s *Scanner) Skipped() int {
	return s.skipped
}
