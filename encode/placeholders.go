package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shaungrady/plate/charmap"
)

// EncodePlaceholders writes text, which holds placeholders assigned by c,
// followed by one legend line per placeholder in assignment order.
func EncodePlaceholders(text string, c *charmap.Codec, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := &strings.Builder{}
	for _, r := range text {
		if _, ok := c.Lookup(r); ok && es.colors != nil {
			buf.WriteString(es.colors.Placeholder(string(r)))
			continue
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('\n')
	for _, r := range c.Placeholders() {
		n, _ := c.Lookup(r)
		d, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("placeholder %U: %w", r, err)
		}
		fmt.Fprintf(buf, "%q %U %s %s\n", r, r, elementLabel(n.Element), d)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
