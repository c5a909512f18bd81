package doc

import "testing"

func TestTypeText(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != tt {
			t.Errorf("%s: got %s", d, got)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Paragraph")); err == nil {
		t.Error("expected an error")
	}
}
