package csvstream_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/shapestone/shape-csvstream/pkg/csvstream"
)

func TestBadLineMode_String(t *testing.T) {
	tests := []struct {
		mode csvstream.BadLineMode
		want string
	}{
		{csvstream.BadLineModeError, "error"},
		{csvstream.BadLineModeWarn, "warn"},
		{csvstream.BadLineModeSkip, "skip"},
		{csvstream.BadLineMode(99), "BadLineMode(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("BadLineMode.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBadLineMode(t *testing.T) {
	for _, mode := range []csvstream.BadLineMode{
		csvstream.BadLineModeError,
		csvstream.BadLineModeWarn,
		csvstream.BadLineModeSkip,
	} {
		got, err := csvstream.ParseBadLineMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseBadLineMode(%q) = %v, %v", mode.String(), got, err)
		}
	}

	var optsErr *csvstream.OptionsError
	if _, err := csvstream.ParseBadLineMode("ignore"); !errors.As(err, &optsErr) {
		t.Errorf("ParseBadLineMode(ignore) error = %v, want *OptionsError", err)
	}
}

func TestColumnCountError(t *testing.T) {
	err := &csvstream.ColumnCountError{Name: "data.csv", Line: 4, Want: 3, Got: 5}

	want := "csvstream: data.csv:L4: number of items in row does not match header (header has 3, row has 5)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, csvstream.ErrFieldCount) {
		t.Error("errors.Is(err, ErrFieldCount) = false")
	}
}

func TestOpenError(t *testing.T) {
	err := &csvstream.OpenError{Name: "x.csv", Err: fs.ErrNotExist}

	want := "csvstream: error opening file x.csv: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false")
	}
}

func TestHeaderError(t *testing.T) {
	err := &csvstream.HeaderError{Name: "x.csv", Err: csvstream.ErrEmptyInput}

	want := "csvstream: error reading header of x.csv: no header line"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, csvstream.ErrEmptyInput) {
		t.Error("errors.Is(err, ErrEmptyInput) = false")
	}
}
