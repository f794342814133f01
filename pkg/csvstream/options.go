package csvstream

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configures a Reader.
type Options struct {
	// Delimiter separates fields.
	// It must be a valid rune and not 0, '"', '\\', '\r' or '\n'.
	// Default: ','
	Delimiter rune

	// Strict rejects data lines whose field count differs from the header
	// with a *ColumnCountError. When false, short lines are padded with empty
	// values and long lines are truncated.
	// Default: true
	Strict bool

	// Name identifies the source in error messages. Open uses the file name
	// when Name is empty; NewReader uses "[no filename]".
	Name string

	// HeaderConverter, if set, is applied to every column name once, when the
	// header is read.
	HeaderConverter HeaderConverter
}

// DefaultOptions returns comma-delimited, strict options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Strict:    true,
	}
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if !validDelim(o.Delimiter) {
		return &OptionsError{Field: "Delimiter", Message: fmt.Sprintf("invalid delimiter %q", o.Delimiter)}
	}
	return nil
}

// validDelim reports whether r can be used as a field delimiter. Quote,
// backslash and line terminators all have their own meaning to the tokenizer.
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\\' && r != '\r' && r != '\n' &&
		utf8.ValidRune(r) && r != utf8.RuneError
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csvstream: invalid " + e.Field + ": " + e.Message
}

// HeaderConverter is a function that transforms header names.
type HeaderConverter func(string) string

// LowercaseHeader converts headers to lowercase.
func LowercaseHeader(s string) string {
	return strings.ToLower(s)
}

// UppercaseHeader converts headers to uppercase.
func UppercaseHeader(s string) string {
	return strings.ToUpper(s)
}

// SnakeCaseHeader converts headers to snake_case.
// "First Name" and "firstName" both become "first_name".
func SnakeCaseHeader(s string) string {
	var b strings.Builder
	gap := false
	for i, ch := range s {
		if ch == ' ' || ch == '-' {
			if b.Len() > 0 && !gap {
				b.WriteRune('_')
			}
			gap = true
			continue
		}
		if unicode.IsUpper(ch) && i > 0 && !gap {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(ch))
		gap = false
	}
	return b.String()
}
