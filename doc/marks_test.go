package doc

import "testing"

func TestOverlay(t *testing.T) {
	ins := &DiffOperation{Type: DiffInsert}
	tests := []struct {
		name       string
		base, over Marks
		want       Marks
	}{
		{"empty", Marks{}, Marks{}, Marks{}},
		{"adds", Marks{Bold: true}, Marks{Italic: true}, Marks{Bold: true, Italic: true}},
		{"cannot clear", Marks{Bold: true}, Marks{}, Marks{Bold: true}},
		{"string wins", Marks{Color: "red", FontSize: "12px"}, Marks{Color: "blue"}, Marks{Color: "blue", FontSize: "12px"}},
		{"diff wins", Marks{}, Marks{Diff: true, DiffOperation: ins}, Marks{Diff: true, DiffOperation: ins}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlay(tt.base, tt.over)
			if !got.Equal(tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMarksEqual(t *testing.T) {
	a := Marks{Diff: true, DiffOperation: &DiffOperation{Type: DiffUpdate, Properties: &Marks{Bold: true}}}
	b := Marks{Diff: true, DiffOperation: &DiffOperation{Type: DiffUpdate, Properties: &Marks{Bold: true}}}
	if !a.Equal(b) {
		t.Errorf("expected equal marks with distinct operation pointers")
	}
	b.DiffOperation.NewProperties = &Marks{}
	if a.Equal(b) {
		t.Errorf("expected new properties to matter")
	}
	if !(Marks{}).IsZero() || (Marks{Kbd: true}).IsZero() {
		t.Errorf("IsZero")
	}
	if !a.WithoutDiff().IsZero() {
		t.Errorf("WithoutDiff left %+v", a.WithoutDiff())
	}
}

func TestWithMarksSharesPayload(t *testing.T) {
	e := FromElement([]byte(`{"type":"img"}`))
	b := e.WithMarks(Marks{Bold: true})
	if e.Marks.Bold {
		t.Errorf("WithMarks modified its receiver")
	}
	if b.Element != e.Element {
		t.Errorf("WithMarks copied the payload")
	}
	if !b.Marks.Bold || b.Type != ElementType {
		t.Errorf("got %+v", b)
	}
}
