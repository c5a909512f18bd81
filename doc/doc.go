// Package doc provides the rich-text document model used by the placeholder
// codec and the inline diff.
//
// # Overview
//
// A document is a sequence of nodes. Each node is either a text node, which
// carries a string and the formatting marks applying to that exact span, or an
// element node, which carries an opaque JSON payload (mentions, images,
// equations, inline links with their own children, ...).
//
// The Node type works as a tagged union, where values are placed in fields
// depending on the node type:
//
//   - TextType: Text and Marks
//   - ElementType: Element and Marks
//
// Marks on an element node are formatting attributes overlaid on the element
// after the fact, for example by the placeholder codec when an element is
// restored from inside a bold span.
//
// # Creating Nodes
//
//	txt := doc.FromText("hello")
//	bold := doc.FromTextMarks("world", doc.Marks{Bold: true})
//	elt := doc.FromElement(json.RawMessage(`{"type":"mention","value":"ann","children":[{"text":""}]}`))
//
// # Marks
//
// Marks is a closed set of typed formatting attributes. Overlay merges two
// sets, with every field set in the overlay winning over the base:
//
//	m := doc.Overlay(doc.Marks{Bold: true, Color: "red"}, doc.Marks{Color: "blue"})
//	// m == doc.Marks{Bold: true, Color: "blue"}
//
// A bool mark is set when true and a string mark is set when non-empty, so an
// overlay can add formatting but never clear it.
//
// # JSON Interoperability
//
// Nodes use the Slate wire shape. Text nodes are objects with a "text" key and
// one key per mark; any other object is an element and its bytes are kept
// verbatim:
//
//	{"text": "hello", "bold": true}
//	{"type": "mention", "value": "ann", "children": [{"text": ""}]}
//
// When an element node carrying marks is marshalled, its marks are merged into
// the payload as a JSON merge patch, so marks win over conflicting element
// fields.
//
// # Thread Safety
//
// Nodes are not thread-safe. Element payloads are shared by reference between
// copies made by WithMarks and Clone and must never be mutated.
//
// # Related Packages
//
//   - github.com/shaungrady/plate/charmap - Placeholder codec over nodes
//   - github.com/shaungrady/plate/libdiff - Inline diff of node sequences
//   - github.com/shaungrady/plate/parse - Parses JSON and YAML into nodes
//   - github.com/shaungrady/plate/encode - Encodes nodes to JSON, YAML and text
package doc
