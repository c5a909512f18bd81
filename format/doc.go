// Package format names the encodings documents are read from and written to.
//
// JSON and YAML carry the node tree itself. Text is an output-only rendering
// of a node sequence for terminals.
package format
