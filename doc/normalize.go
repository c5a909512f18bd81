package doc

// Normalize merges adjacent text nodes with equal marks and drops empty text
// nodes, except that an empty sequence stays empty. Element nodes are kept as
// they are.
func Normalize(nodes []*Node) []*Node {
	res := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.IsText() {
			res = append(res, n)
			continue
		}
		if n.Text == "" {
			continue
		}
		if len(res) > 0 {
			last := res[len(res)-1]
			if last.IsText() && last.Marks.Equal(n.Marks) {
				res[len(res)-1] = last.WithText(last.Text + n.Text)
				continue
			}
		}
		res = append(res, n)
	}
	return res
}
