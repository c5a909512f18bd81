// Package libdiff computes inline diffs between two sequences of document
// nodes.
//
// # Usage
//
//	// Diff the children of two paragraphs
//	nodes, err := libdiff.DiffInline(oldChildren, newChildren)
//
//	// Recover either side from the result
//	newAgain := libdiff.Accept(nodes)
//	oldAgain := libdiff.Reject(nodes)
//
// Both sides are flattened to plain strings, with every element replaced by a
// placeholder rune from a charmap.Codec, and diffed with diffmatchpatch. Each
// resulting span becomes one or more text nodes carrying diff marks, which
// the codec then expands back into elements.
//
// Elements with the same key share a placeholder, so an element present on
// both sides diffs as unchanged. The default key is the element's compact
// JSON; ExprKey builds one from an expression.
//
// # Related Packages
//
//   - github.com/shaungrady/plate/doc - Node model and diff marks
//   - github.com/shaungrady/plate/charmap - Placeholder codec
package libdiff
