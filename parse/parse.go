// Package parse reads node sequences from JSON or YAML.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shaungrady/plate/doc"
	"github.com/shaungrady/plate/format"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// Parse decodes d into a sequence of nodes. d may hold an array of nodes, a
// single node, or a container object such as a paragraph whose "children" are
// returned.
func Parse(d []byte, opts ...ParseOption) ([]*doc.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat, children: true}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		d = j
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return nil, ErrEmpty
	}
	switch d[0] {
	case '[':
		return unmarshalNodes(d)
	case '{':
		children := gjson.GetBytes(d, "children")
		if pOpts.children && children.IsArray() && !gjson.GetBytes(d, "text").Exists() {
			return unmarshalNodes([]byte(children.Raw))
		}
		n := &doc.Node{}
		if err := json.Unmarshal(d, n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return []*doc.Node{n}, nil
	default:
		return nil, fmt.Errorf("%w: expected an array or an object", ErrParse)
	}
}

func ParseFile(p string, opts ...ParseOption) ([]*doc.Node, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	opts = append([]ParseOption{ParseFormat(format.FromPath(p))}, opts...)
	nodes, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return nodes, nil
}

func unmarshalNodes(d []byte) ([]*doc.Node, error) {
	var res []*doc.Node
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	for i, n := range res {
		if n == nil {
			return nil, fmt.Errorf("%w: null node at %d", ErrParse, i)
		}
	}
	return res, nil
}
