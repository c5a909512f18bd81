package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaungrady/plate/doc"
)

type parseTest struct {
	name string
	in   string
	opts []ParseOption
	text string
	n    int
	err  error
}

func TestParse(t *testing.T) {
	pts := []parseTest{
		{
			name: "array",
			in:   `[{"text":"a"},{"type":"mention","children":[{"text":""}]},{"text":"b"}]`,
			text: "ab",
			n:    3,
		},
		{
			name: "paragraph",
			in:   `{"type":"p","children":[{"text":"hello ","bold":true},{"text":"world"}]}`,
			text: "hello world",
			n:    2,
		},
		{
			name: "paragraph kept",
			in:   `{"type":"p","children":[{"text":"hello"}]}`,
			opts: []ParseOption{ParseChildren(false)},
			text: "",
			n:    1,
		},
		{
			name: "single text",
			in:   `  {"text":"x"}`,
			text: "x",
			n:    1,
		},
		{
			name: "yaml",
			in: `
type: p
children:
- text: "see "
- type: mention
  value: ann
  children:
  - text: ""
- text: "!"
  italic: true
`,
			opts: []ParseOption{ParseYAML()},
			text: "see !",
			n:    3,
		},
		{name: "empty", in: "  ", err: ErrEmpty},
		{name: "scalar", in: `"x"`, err: ErrParse},
		{name: "null node", in: `[{"text":"a"},null]`, err: ErrParse},
		{name: "bad node", in: `[{"text":1}]`, err: ErrParse},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			nodes, err := Parse([]byte(pt.in), pt.opts...)
			if pt.err != nil {
				if !errors.Is(err, pt.err) {
					t.Fatalf("expected %v, got %v", pt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(nodes) != pt.n {
				t.Errorf("got %d nodes, want %d", len(nodes), pt.n)
			}
			if got := doc.Text(nodes); got != pt.text {
				t.Errorf("got text %q, want %q", got, pt.text)
			}
		})
	}
}

func TestParseYAMLMarks(t *testing.T) {
	nodes, err := Parse([]byte("- text: hi\n  bold: true\n  color: red\n"), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := doc.FromTextMarks("hi", doc.Marks{Bold: true, Color: "red"})
	if len(nodes) != 1 || !doc.Equal(nodes[0], want) {
		t.Errorf("got %+v", nodes)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.yaml")
	if err := os.WriteFile(p, []byte("- text: from yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nodes, err := ParseFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Text(nodes) != "from yaml" {
		t.Errorf("got %q", doc.Text(nodes))
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}
}
