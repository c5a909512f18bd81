package libdiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/shaungrady/plate/charmap"
	"github.com/shaungrady/plate/debug"
	"github.com/shaungrady/plate/doc"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// flat is one side of a diff. runes is what the diff engine compares: a rune
// per text rune or element key. out holds the placeholder that restores each
// rune's own element, which differs from runes when two elements share a key
// but not a payload. marks are the marks in effect for each rune.
type flat struct {
	runes []rune
	out   []rune
	marks []doc.Marks
}

func (f *flat) add(n *doc.Node) {
	for _, r := range n.Text {
		f.runes = append(f.runes, r)
		f.out = append(f.out, r)
		f.marks = append(f.marks, n.Marks)
	}
}

func (f *flat) addElement(key, out rune) {
	f.runes = append(f.runes, key)
	f.out = append(f.out, out)
	f.marks = append(f.marks, doc.Marks{})
}

type keyed struct {
	node *doc.Node
	char rune
}

type flattener struct {
	codec *charmap.Codec
	key   KeyFunc
	byKey map[string]keyed
}

func (fl *flattener) flatten(nodes []*doc.Node) (*flat, error) {
	res := &flat{}
	for i, n := range nodes {
		if n.IsText() {
			res.add(n)
			continue
		}
		k, err := fl.key(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		kd, ok := fl.byKey[k]
		if !ok {
			kd.node = n
			kd.char, err = fl.encode(n)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			fl.byKey[k] = kd
		}
		out := kd.char
		if !doc.Equal(n, kd.node) {
			out, err = fl.encode(n)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
		}
		res.addElement(kd.char, out)
	}
	return res, nil
}

func (fl *flattener) encode(n *doc.Node) (rune, error) {
	p, err := fl.codec.Encode(n)
	if err != nil {
		return 0, err
	}
	r, _ := utf8.DecodeRuneInString(p.Text)
	return r, nil
}

// DiffInline diffs two sequences of inline nodes, typically the children of
// two versions of a paragraph. The result reads as the union of both sides,
// with changed spans and elements carrying diff marks.
func DiffInline(from, to []*doc.Node, opts ...Option) ([]*doc.Node, error) {
	o := &diffOpts{key: JSONKey}
	for _, opt := range opts {
		opt(o)
	}
	fl := &flattener{
		codec: charmap.New(charmap.Unavailable(doc.Text(from) + doc.Text(to))),
		key:   o.key,
		byKey: map[string]keyed{},
	}
	a, err := fl.flatten(from)
	if err != nil {
		return nil, fmt.Errorf("flattening from: %w", err)
	}
	b, err := fl.flatten(to)
	if err != nil {
		return nil, fmt.Errorf("flattening to: %w", err)
	}

	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(a.runes, b.runes, false)
	if o.semantic {
		diffs = dmp.DiffCleanupSemantic(diffs)
	}
	if debug.Diff() {
		debug.Logf("libdiff: %d placeholders, diffs %s\n", fl.codec.Len(), dmp.DiffPrettyText(diffs))
	}

	var texts []*doc.Node
	ai, bi := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			texts = append(texts, equalSpans(a, b, ai, bi, n, o.ignoreMarks)...)
			ai += n
			bi += n
		case diffpatch.DiffDelete:
			texts = append(texts, changedSpans(a, ai, n, doc.DiffDelete)...)
			ai += n
		case diffpatch.DiffInsert:
			texts = append(texts, changedSpans(b, bi, n, doc.DiffInsert)...)
			bi += n
		}
	}
	if err := covered(a, b, ai, bi); err != nil {
		return nil, err
	}
	return fl.codec.DecodeAll(texts), nil
}

// covered checks that the diff consumed exactly both sides.
func covered(a, b *flat, ai, bi int) error {
	if ai != len(a.runes) || bi != len(b.runes) {
		return fmt.Errorf("%w: covers %d/%d and %d/%d runes", ErrDiff, ai, len(a.runes), bi, len(b.runes))
	}
	return nil
}

// Flatten encodes nodes with c and returns the concatenated text.
func Flatten(nodes []*doc.Node, c *charmap.Codec) (string, error) {
	texts, err := c.EncodeAll(nodes)
	if err != nil {
		return "", err
	}
	return doc.Text(texts), nil
}

// changedSpans returns text nodes for f.runes[i:i+n], split where the marks
// change, each marked as op.
func changedSpans(f *flat, i, n int, op doc.DiffOpType) []*doc.Node {
	var res []*doc.Node
	for start := i; start < i+n; {
		end := start + 1
		for end < i+n && f.marks[end].Equal(f.marks[start]) {
			end++
		}
		m := doc.Overlay(f.marks[start], doc.Marks{
			Diff:          true,
			DiffOperation: &doc.DiffOperation{Type: op},
		})
		res = append(res, doc.FromTextMarks(string(f.out[start:end]), m))
		start = end
	}
	return res
}

// equalSpans returns text nodes for text present on both sides, split where
// the marks of either side change. Spans whose marks differ between the
// sides are marked as updates. Elements that share a key but not a payload
// come out as the old element deleted and the new one inserted.
func equalSpans(a, b *flat, ai, bi, n int, ignoreMarks bool) []*doc.Node {
	var res []*doc.Node
	for k := 0; k < n; {
		if a.out[ai+k] != b.out[bi+k] {
			res = append(res,
				changedSpans(a, ai+k, 1, doc.DiffDelete)[0],
				changedSpans(b, bi+k, 1, doc.DiffInsert)[0])
			k++
			continue
		}
		end := k + 1
		for end < n &&
			a.out[ai+end] == b.out[bi+end] &&
			a.marks[ai+end].Equal(a.marks[ai+k]) &&
			b.marks[bi+end].Equal(b.marks[bi+k]) {
			end++
		}
		am, bm := a.marks[ai+k], b.marks[bi+k]
		m := bm
		if !ignoreMarks && !am.Equal(bm) {
			from, to := am, bm
			m = doc.Overlay(bm, doc.Marks{
				Diff: true,
				DiffOperation: &doc.DiffOperation{
					Type:          doc.DiffUpdate,
					Properties:    &from,
					NewProperties: &to,
				},
			})
		}
		res = append(res, doc.FromTextMarks(string(b.out[bi+k:bi+end]), m))
		k = end
	}
	return res
}
