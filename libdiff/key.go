package libdiff

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shaungrady/plate/doc"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// KeyFunc returns the identity of an element node. Elements with equal keys
// are treated as the same element when diffing.
type KeyFunc func(*doc.Node) (string, error)

// JSONKey keys an element by its compact JSON, marks included.
func JSONKey(n *doc.Node) (string, error) {
	d, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKey, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Compact(buf, d); err != nil {
		return "", fmt.Errorf("%w: %w", ErrKey, err)
	}
	return buf.String(), nil
}

// ExprKey compiles src into a KeyFunc. The expression sees the element's
// JSON object as el and its type as kind, for example
//
//	kind + ":" + el.value
func ExprKey(src string) (KeyFunc, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKey, err)
	}
	return exprKey(prg), nil
}

func exprKey(prg *vm.Program) KeyFunc {
	return func(n *doc.Node) (string, error) {
		d, err := json.Marshal(n)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrKey, err)
		}
		var el map[string]any
		if err := json.Unmarshal(d, &el); err != nil {
			return "", fmt.Errorf("%w: %w", ErrKey, err)
		}
		env := map[string]any{
			"el":   el,
			"kind": n.Element.ElementType(),
		}
		v, err := expr.Run(prg, env)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrKey, err)
		}
		return fmt.Sprint(v), nil
	}
}
