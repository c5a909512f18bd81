package libdiff

import "github.com/shaungrady/plate/doc"

// Accept returns the new side of a DiffInline result: deletions dropped,
// insertions and updates kept without their diff marks.
func Accept(nodes []*doc.Node) []*doc.Node {
	return review(nodes, doc.DiffDelete, func(op *doc.DiffOperation, m doc.Marks) doc.Marks {
		return m.WithoutDiff()
	})
}

// Reject returns the old side of a DiffInline result: insertions dropped,
// deletions kept and updates reverted to their old marks.
func Reject(nodes []*doc.Node) []*doc.Node {
	return review(nodes, doc.DiffInsert, func(op *doc.DiffOperation, m doc.Marks) doc.Marks {
		if op.Type == doc.DiffUpdate && op.Properties != nil {
			return *op.Properties
		}
		return m.WithoutDiff()
	})
}

func review(nodes []*doc.Node, drop doc.DiffOpType, marks func(*doc.DiffOperation, doc.Marks) doc.Marks) []*doc.Node {
	res := make([]*doc.Node, 0, len(nodes))
	for _, n := range nodes {
		op := n.Marks.DiffOperation
		if !n.Marks.Diff || op == nil {
			res = append(res, n)
			continue
		}
		if op.Type == drop {
			continue
		}
		c := n.Clone()
		c.Marks = marks(op, n.Marks)
		res = append(res, c)
	}
	return doc.Normalize(res)
}
