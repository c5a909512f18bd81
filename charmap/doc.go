// Package charmap substitutes non-text document nodes with single-character
// placeholders so that a sequence of nodes can go through a text-only diff,
// and restores the original nodes afterwards.
//
// A Codec covers one round: encode every node of the inputs, hand the
// resulting text to the diff, then decode each text node the diff produced.
//
//	c := charmap.New(charmap.Unavailable(allTextOfBothSides))
//	t, err := c.Encode(mention) // t.Text is a single placeholder rune
//	...
//	nodes := c.Decode(diffed) // placeholders replaced by the mention again
//
// Placeholders are allocated from a cursor starting just past 'A' and only
// ever move forward, skipping any rune in the unavailable set. Callers should
// put every rune that may occur literally in the text into that set: decode
// treats a rune it never assigned as ordinary text.
//
// A Codec is not safe for concurrent use.
package charmap
