package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"yml", YAMLFormat},
		{"y", YAMLFormat},
		{"text", TextFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	for p, want := range map[string]Format{
		"a.json":   JSONFormat,
		"b/c.yaml": YAMLFormat,
		"d.yml":    YAMLFormat,
		"e.txt":    JSONFormat,
		"no-ext":   JSONFormat,
		"f.text":   JSONFormat,
	} {
		if got := FromPath(p); got != want {
			t.Errorf("%s: got %s, want %s", p, got, want)
		}
	}
}
