package doc

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/tidwall/gjson"
)

type textJSON struct {
	Text string `json:"text"`
	Marks
}

func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Type {
	case TextType:
		return json.Marshal(textJSON{Text: n.Text, Marks: n.Marks})
	case ElementType:
		if n.Element == nil || len(n.Element.Raw) == 0 {
			return nil, fmt.Errorf("%w: element without payload", ErrBadNode)
		}
		if n.Marks.IsZero() {
			return n.Element.Raw, nil
		}
		m, err := json.Marshal(n.Marks)
		if err != nil {
			return nil, err
		}
		d, err := jsonpatch.MergePatch(n.Element.Raw, m)
		if err != nil {
			return nil, fmt.Errorf("%w: could not overlay marks: %w", ErrBadNode, err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %s", ErrBadNode, n.Type)
	}
}

func (n *Node) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) == 0 || d[0] != '{' {
		return fmt.Errorf("%w: expected an object, got %.20q", ErrBadNode, d)
	}
	if !gjson.GetBytes(d, "text").Exists() {
		raw, m, err := liftMarks(d)
		if err != nil {
			return err
		}
		*n = Node{
			Type:    ElementType,
			Marks:   m,
			Element: &Element{Raw: raw},
		}
		return nil
	}
	tmp := &textJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return fmt.Errorf("%w: %w", ErrBadNode, err)
	}
	*n = Node{Type: TextType, Text: tmp.Text, Marks: tmp.Marks}
	return nil
}

// markKeys are the JSON keys of Marks.
var markKeys = []string{
	"bold", "italic", "underline", "strikethrough", "code",
	"subscript", "superscript", "kbd",
	"color", "backgroundColor", "fontSize",
	"diff", "diffOperation",
}

// liftMarks undoes the merge done by MarshalJSON: mark keys found in the
// element object d are decoded into Marks and removed from the payload.
func liftMarks(d []byte) (json.RawMessage, Marks, error) {
	var strip map[string]any
	for _, k := range markKeys {
		if gjson.GetBytes(d, k).Exists() {
			if strip == nil {
				strip = map[string]any{}
			}
			strip[k] = nil
		}
	}
	if strip == nil {
		return append(json.RawMessage(nil), d...), Marks{}, nil
	}
	var m Marks
	if err := json.Unmarshal(d, &m); err != nil {
		return nil, Marks{}, fmt.Errorf("%w: element marks: %w", ErrBadNode, err)
	}
	p, err := json.Marshal(strip)
	if err != nil {
		return nil, Marks{}, err
	}
	raw, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, Marks{}, fmt.Errorf("%w: could not lift marks: %w", ErrBadNode, err)
	}
	return raw, m, nil
}
