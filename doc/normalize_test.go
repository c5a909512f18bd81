package doc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	b := Marks{Bold: true}
	e := FromElement([]byte(`{"type":"img"}`))
	in := []*Node{
		FromText("a"), FromText(""), FromText("b"),
		FromTextMarks("c", b), FromTextMarks("d", b),
		e,
		FromText("e"), FromText("f"),
	}
	want := []*Node{FromText("ab"), FromTextMarks("cd", b), e, FromText("ef")}
	got := Normalize(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if in[0].Text != "a" {
		t.Errorf("Normalize modified its input")
	}
}
