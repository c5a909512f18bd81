package charmap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shaungrady/plate/debug"
	"github.com/shaungrady/plate/doc"
)

const startChar = 'A'

type Codec struct {
	next        rune
	unavailable string

	// chars holds the placeholders in assignment order, decode depends on it.
	chars []rune
	nodes map[rune]*doc.Node
}

type Option func(*Codec)

// Unavailable sets the characters which must never be used as placeholders.
func Unavailable(chars string) Option {
	return func(c *Codec) { c.unavailable = chars }
}

func New(opts ...Option) *Codec {
	c := &Codec{
		next:  startChar,
		nodes: map[rune]*doc.Node{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode returns node itself if it is a text node. Otherwise it assigns node a
// new placeholder and returns a text node containing only that placeholder.
func (c *Codec) Encode(node *doc.Node) (*doc.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", doc.ErrBadNode)
	}
	if node.IsText() {
		return node, nil
	}
	r, err := c.unusedChar()
	if err != nil {
		return nil, err
	}
	c.chars = append(c.chars, r)
	c.nodes[r] = node
	if debug.Encode() {
		debug.Logf("charmap: %q (%U) -> %s\n", r, r, node)
	}
	return doc.FromText(string(r)), nil
}

func (c *Codec) EncodeAll(nodes []*doc.Node) ([]*doc.Node, error) {
	res := make([]*doc.Node, len(nodes))
	for i, n := range nodes {
		t, err := c.Encode(n)
		if err != nil {
			return nil, fmt.Errorf("encoding node %d: %w", i, err)
		}
		res[i] = t
	}
	return res, nil
}

// Decode expands text into the sequence of nodes it encodes, replacing every
// placeholder by its node with the marks of text overlaid. Runes which were
// never assigned are left as text.
func (c *Codec) Decode(text *doc.Node) []*doc.Node {
	res := []*doc.Node{text}
	for _, r := range c.chars {
		res = replaceChar(res, r, c.nodes[r])
	}
	if debug.Decode() {
		debug.Logf("charmap: decoded %s\n   into %s\n", text, res)
	}
	return res
}

func (c *Codec) DecodeAll(texts []*doc.Node) []*doc.Node {
	res := make([]*doc.Node, 0, len(texts))
	for _, t := range texts {
		res = append(res, c.Decode(t)...)
	}
	return res
}

// Len returns the number of placeholders assigned so far.
func (c *Codec) Len() int {
	return len(c.chars)
}

// Placeholders returns the assigned placeholders in assignment order.
func (c *Codec) Placeholders() []rune {
	return append([]rune(nil), c.chars...)
}

func (c *Codec) Lookup(r rune) (*doc.Node, bool) {
	n, ok := c.nodes[r]
	return n, ok
}

func (c *Codec) unusedChar() (rune, error) {
	for {
		if c.next >= unicode.MaxRune {
			return 0, fmt.Errorf("%w: %d assigned", ErrAllocationExhausted, len(c.chars))
		}
		c.next++
		if !utf8.ValidRune(c.next) {
			// surrogate halves
			continue
		}
		if !strings.ContainsRune(c.unavailable, c.next) {
			return c.next, nil
		}
	}
}

func replaceChar(haystack []*doc.Node, needle rune, node *doc.Node) []*doc.Node {
	res := make([]*doc.Node, 0, len(haystack))
	for _, hn := range haystack {
		if !hn.IsText() {
			res = append(res, hn)
			continue
		}
		// "a<needle>b<needle>" -> ["a", "b", ""]
		parts := strings.Split(hn.Text, string(needle))
		if len(parts) == 1 {
			res = append(res, hn)
			continue
		}
		texts := make([]*doc.Node, len(parts))
		for i, p := range parts {
			texts[i] = hn.WithText(p)
		}
		with := node.WithMarks(hn.Props())
		for _, n := range interleave(texts, with) {
			if !n.IsText() {
				res = append(res, n.Clone())
				continue
			}
			if n.Text == "" {
				continue
			}
			res = append(res, n)
		}
	}
	return res
}

// interleave returns xs with sep between each pair of consecutive elements.
func interleave[T any](xs []T, sep T) []T {
	if len(xs) == 0 {
		return nil
	}
	res := make([]T, 0, 2*len(xs)-1)
	for i, x := range xs {
		if i > 0 {
			res = append(res, sep)
		}
		res = append(res, x)
	}
	return res
}
