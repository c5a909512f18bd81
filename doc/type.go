package doc

import "fmt"

type Type int

const (
	TextType Type = iota
	ElementType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType:    "Text",
		ElementType: "Element",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		TextType,
		ElementType,
	}
}
