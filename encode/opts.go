package encode

import "github.com/shaungrady/plate/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeIndent sets the indentation of JSON output.
func EncodeIndent(v string) EncodeOption {
	return func(es *EncState) { es.indent = v }
}
