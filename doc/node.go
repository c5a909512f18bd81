package doc

import (
	"bytes"
	"encoding/json"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/tidwall/gjson"
)

type Node struct {
	Type Type

	Text    string
	Marks   Marks
	Element *Element
}

// Element is the opaque payload of a non-text node.
type Element struct {
	Raw json.RawMessage
}

// ElementType returns the "type" key of the payload, or "" if there is none.
func (e *Element) ElementType() string {
	if e == nil {
		return ""
	}
	return gjson.GetBytes(e.Raw, "type").String()
}

// TextContent returns the concatenated text of all descendant text nodes of
// the payload.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	buf := &strings.Builder{}
	collectText(gjson.ParseBytes(e.Raw), buf)
	return buf.String()
}

func collectText(v gjson.Result, buf *strings.Builder) {
	if t := v.Get("text"); t.Exists() {
		buf.WriteString(t.String())
		return
	}
	v.Get("children").ForEach(func(_, child gjson.Result) bool {
		collectText(child, buf)
		return true
	})
}

func FromText(v string) *Node {
	return &Node{Type: TextType, Text: v}
}

func FromTextMarks(v string, m Marks) *Node {
	return &Node{Type: TextType, Text: v, Marks: m}
}

func FromElement(raw json.RawMessage) *Node {
	return &Node{Type: ElementType, Element: &Element{Raw: raw}}
}

func (n *Node) IsText() bool {
	return n != nil && n.Type == TextType
}

// Props returns the formatting attributes of n.
func (n *Node) Props() Marks {
	return n.Marks
}

// WithText returns a copy of n with its text replaced.
func (n *Node) WithText(v string) *Node {
	res := *n
	res.Text = v
	return &res
}

// WithMarks returns a shallow copy of n with m overlaid on its marks. The
// element payload, if any, is shared with n.
func (n *Node) WithMarks(m Marks) *Node {
	res := *n
	res.Marks = Overlay(n.Marks, m)
	return &res
}

// Clone returns a copy of n that shares the element payload but owns its
// marks, including the diff operation.
func (n *Node) Clone() *Node {
	res := *n
	res.Marks.DiffOperation = n.Marks.DiffOperation.Clone()
	return &res
}

// Equal reports whether a and b are the same node. Element payloads are
// compared as JSON values, so key order and spacing do not matter.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || !a.Marks.Equal(b.Marks) {
		return false
	}
	switch a.Type {
	case TextType:
		return a.Text == b.Text
	default:
		if a.Element == b.Element {
			return true
		}
		if a.Element == nil || b.Element == nil {
			return false
		}
		return bytes.Equal(a.Element.Raw, b.Element.Raw) ||
			jsonpatch.Equal(a.Element.Raw, b.Element.Raw)
	}
}

func SliceEqual(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Text returns the concatenated text of the text nodes in nodes.
func Text(nodes []*Node) string {
	buf := &strings.Builder{}
	for _, n := range nodes {
		if n.IsText() {
			buf.WriteString(n.Text)
		}
	}
	return buf.String()
}
