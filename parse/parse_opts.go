package parse

import "github.com/shaungrady/plate/format"

type parseOpts struct {
	format   format.Format
	children bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseChildren controls whether a top level object with a "children" array
// is unwrapped into its children. It is on by default.
func ParseChildren(v bool) ParseOption {
	return func(o *parseOpts) { o.children = v }
}
