package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shaungrady/plate/doc"
)

var out io.Writer = os.Stderr

// Logf formats like fmt.Printf to stderr, rendering nodes and node slices as
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *doc.Node, []*doc.Node:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = string(d)
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
