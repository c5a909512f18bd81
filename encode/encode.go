// Package encode writes node sequences as JSON, YAML or terminal text.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shaungrady/plate/doc"
	"github.com/shaungrady/plate/format"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	colors *Colors
	indent string
}

func Encode(nodes []*doc.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: format.JSONFormat, indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	if nodes == nil {
		nodes = []*doc.Node{}
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.MarshalIndent(nodes, "", es.indent)
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := json.Marshal(nodes)
		if err != nil {
			return err
		}
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
		_, err = w.Write(y)
		return err
	case format.TextFormat:
		_, err := io.WriteString(w, es.text(nodes)+"\n")
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

func MustString(nodes []*doc.Node, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(nodes, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// text renders nodes inline. Inserted spans are written {+like this+},
// deleted ones [-like this-] and updated ones {~like this~}, unless colors
// are set.
func (es *EncState) text(nodes []*doc.Node) string {
	buf := &strings.Builder{}
	for _, n := range nodes {
		s := n.Text
		if !n.IsText() {
			s = elementLabel(n.Element)
		}
		op := n.Marks.DiffOperation
		if !n.Marks.Diff || op == nil {
			if !n.IsText() && es.colors != nil {
				s = es.colors.Element(s)
			}
			buf.WriteString(s)
			continue
		}
		buf.WriteString(es.diffSpan(op.Type, s))
	}
	return buf.String()
}

func (es *EncState) diffSpan(t doc.DiffOpType, s string) string {
	if es.colors != nil {
		switch t {
		case doc.DiffInsert:
			return es.colors.Insert(s)
		case doc.DiffDelete:
			return es.colors.Delete(s)
		default:
			return es.colors.Update(s)
		}
	}
	switch t {
	case doc.DiffInsert:
		return "{+" + s + "+}"
	case doc.DiffDelete:
		return "[-" + s + "-]"
	default:
		return "{~" + s + "~}"
	}
}

func elementLabel(e *doc.Element) string {
	typ := e.ElementType()
	if typ == "" {
		typ = "element"
	}
	if txt := e.TextContent(); txt != "" {
		return "[" + typ + ": " + txt + "]"
	}
	return "[" + typ + "]"
}
