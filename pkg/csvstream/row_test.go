package csvstream

import (
	"reflect"
	"testing"
)

func TestOrderedRow_Access(t *testing.T) {
	row := newOrderedRow([]string{"id", "tag", "tag"}, []string{"7", "x", "y"})

	t.Run("Get", func(t *testing.T) {
		tests := []struct {
			index int
			want  string
			ok    bool
		}{
			{0, "7", true},
			{2, "y", true},
			{3, "", false},
			{-1, "", false},
		}
		for _, tt := range tests {
			got, ok := row.Get(tt.index)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Get(%d) = %q, %v, want %q, %v", tt.index, got, ok, tt.want, tt.ok)
			}
		}
	})

	t.Run("GetByName returns first match", func(t *testing.T) {
		if got, ok := row.GetByName("tag"); got != "x" || !ok {
			t.Errorf("GetByName(tag) = %q, %v, want x, true", got, ok)
		}
		if _, ok := row.GetByName("missing"); ok {
			t.Error("GetByName(missing) ok = true")
		}
	})

	t.Run("Names and Values", func(t *testing.T) {
		if got := row.Names(); !reflect.DeepEqual(got, []string{"id", "tag", "tag"}) {
			t.Errorf("Names() = %q", got)
		}
		if got := row.Values(); !reflect.DeepEqual(got, []string{"7", "x", "y"}) {
			t.Errorf("Values() = %q", got)
		}
	})

	t.Run("Map matches associative rows", func(t *testing.T) {
		want := newRow([]string{"id", "tag", "tag"}, []string{"7", "x", "y"})
		if got := row.Map(); !reflect.DeepEqual(got, want) {
			t.Errorf("Map() = %v, want %v", got, want)
		}
		if want["tag"] != "y" {
			t.Errorf("duplicate column resolved to %q, want last value y", want["tag"])
		}
	})
}
