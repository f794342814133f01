package csvstream_test

import (
	"testing"

	"github.com/shapestone/shape-csvstream/pkg/csvstream"
)

func TestDefaultOptions(t *testing.T) {
	opts := csvstream.DefaultOptions()
	if opts.Delimiter != ',' {
		t.Errorf("Delimiter = %q, want ','", opts.Delimiter)
	}
	if !opts.Strict {
		t.Error("Strict = false, want true")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		delim   rune
		wantErr bool
	}{
		{"comma", ',', false},
		{"tab", '\t', false},
		{"semicolon", ';', false},
		{"multibyte", '│', false},
		{"zero", 0, true},
		{"quote", '"', true},
		{"backslash", '\\', true},
		{"CR", '\r', true},
		{"LF", '\n', true},
		{"replacement char", '�', true},
		{"surrogate", 0xD800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := csvstream.DefaultOptions()
			opts.Delimiter = tt.delim
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHeaderConverters(t *testing.T) {
	tests := []struct {
		name string
		conv csvstream.HeaderConverter
		in   string
		want string
	}{
		{"lower", csvstream.LowercaseHeader, "First Name", "first name"},
		{"upper", csvstream.UppercaseHeader, "First Name", "FIRST NAME"},
		{"snake spaces", csvstream.SnakeCaseHeader, "First Name", "first_name"},
		{"snake camel", csvstream.SnakeCaseHeader, "postalCode", "postal_code"},
		{"snake hyphen", csvstream.SnakeCaseHeader, "zip-code", "zip_code"},
		{"snake collapses gaps", csvstream.SnakeCaseHeader, "a  - b", "a_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conv(tt.in); got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
			}
		})
	}
}
