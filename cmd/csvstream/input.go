package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-csvstream/pkg/csvstream"
)

const sniffSize = 4096

// openReader opens path ("-" for stdin) with the delimiter and policy from
// flags. The returned cleanup closes everything that was opened.
func openReader(path string, flags *inputFlags) (*csvstream.Reader, func(), error) {
	opts := csvstream.DefaultOptions()
	opts.Strict = !flags.lenient

	if flags.delimiter != "auto" {
		delim, err := parseDelimiter(flags.delimiter)
		if err != nil {
			return nil, nil, err
		}
		opts.Delimiter = delim

		if path != "-" {
			r, err := csvstream.Open(path, opts)
			if err != nil {
				return nil, nil, err
			}
			return r, func() { r.Close() }, nil
		}
	}

	var (
		in      io.Reader = os.Stdin
		closeFn           = func() {}
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		in = f
		closeFn = func() { f.Close() }
		opts.Name = path
	}

	br := bufio.NewReaderSize(in, sniffSize)
	if flags.delimiter == "auto" {
		opts.Delimiter = sniff(br)
	}

	r, err := csvstream.NewReader(br, opts)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return r, func() {
		r.Close()
		closeFn()
	}, nil
}

// sniff guesses the delimiter from the buffered prefix of br without
// consuming it.
func sniff(br *bufio.Reader) rune {
	sample, _ := br.Peek(sniffSize)
	text := string(sample)
	if i := strings.LastIndexAny(text, "\r\n"); i > 0 && len(sample) == sniffSize {
		text = text[:i]
	}
	return csvstream.NewSniffer(text).DetectDelimiter()
}

// parseDelimiter accepts a single character or a tab spelled "\t" or "tab".
func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}
