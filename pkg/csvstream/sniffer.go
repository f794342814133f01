package csvstream

import (
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/shapestone/shape-csvstream/internal/tokenizer"
)

// SniffDelimiters are the delimiters a Sniffer considers, in order of
// preference on a tie.
var SniffDelimiters = []rune{',', '\t', ';', '|'}

// Sniffer guesses the delimiter of a sample of delimited text.
type Sniffer struct {
	sample    string
	delimiter rune
	analyzed  bool
}

// NewSniffer creates a new Sniffer with a sample of CSV data.
// For best results, provide at least 2-3 complete lines.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample}
}

// DetectDelimiter returns the detected field delimiter, or ',' when no
// candidate splits the sample.
func (s *Sniffer) DetectDelimiter() rune {
	if !s.analyzed {
		s.delimiter = s.detectDelimiter()
		s.analyzed = true
	}
	return s.delimiter
}

// detectDelimiter tokenizes the sample once per candidate. A candidate that
// splits every line into the same number of fields scores ten times its
// per-line delimiter count.
func (s *Sniffer) detectDelimiter() rune {
	best := ','
	bestScore := 0

	for _, delim := range SniffDelimiters {
		counts := lineWidths(s.sample, delim)
		if len(counts) == 0 || counts[0] < 2 {
			continue
		}

		score := counts[0] - 1
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}

		if score > bestScore {
			best = delim
			bestScore = score
		}
	}

	return best
}

// lineWidths returns the field count of each non-empty line in sample.
func lineWidths(sample string, delim rune) []int {
	src := &sampleReader{stream: shapetokenizer.NewStream(sample)}
	var widths []int
	for {
		fields, ok := tokenizer.ReadLine(src, delim)
		if !ok {
			return widths
		}
		if len(fields) == 1 && fields[0] == "" {
			continue
		}
		widths = append(widths, len(fields))
	}
}

// sampleReader feeds an in-memory shape-core stream to the tokenizer. The
// stream may drop or replace bytes that are not valid UTF-8; those are never
// quotes, escapes, terminators or ASCII delimiters, so field counts are
// unaffected. Row data is read through internal/source instead.
type sampleReader struct {
	stream     shapetokenizer.Stream
	last       rune
	pushedBack bool
}

func (r *sampleReader) ReadChar() (rune, bool, bool) {
	if r.pushedBack {
		r.pushedBack = false
		return r.last, false, true
	}
	c, ok := r.stream.NextChar()
	if !ok {
		return 0, false, false
	}
	r.last = c
	return c, false, true
}

func (r *sampleReader) UnreadChar() {
	r.pushedBack = true
}
