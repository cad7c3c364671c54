package tree

import "frep/opcode"

// Remap substitutes the cache's canonical X, Y and Z variables with
// the given replacement subtrees, rebuilding only what depends on
// them. Nodes are revisited children-first; each rebuilt parent goes
// through the interning cache, so subexpressions untouched by the
// substitution resolve to their original nodes and sharing stays
// maximal. When none of X, Y or Z occurs in t the result is
// identity-equal to t.
//
// The replacements must come from the same cache as t; their
// references stay with the caller. The caller owns the returned
// reference. Remap on the empty handle returns the empty handle.
func (t Tree) Remap(x, y, z Tree) Tree {
	if t.n == nil {
		return Tree{}
	}
	c := t.n.cache
	c.claim(x.n)
	c.claim(y.n)
	c.claim(z.n)

	subst := map[*node]*node{
		c.x: x.n,
		c.y: y.n,
		c.z: z.n,
	}

	// Owned references to every rebuilt node, dropped once the result
	// has its own reference.
	var built []Tree
	for _, n := range t.ordered() {
		if opcode.Args(n.op) < 1 {
			continue
		}
		lhs, rhs := n.lhs, n.rhs
		if r, ok := subst[lhs]; ok {
			lhs = r
		}
		if r, ok := subst[rhs]; ok {
			rhs = r
		}
		nt := c.mustOp(n.op, Tree{lhs}, Tree{rhs})
		subst[n] = nt.n
		built = append(built, nt)
	}

	result := t
	if r, ok := subst[t.n]; ok {
		result = Tree{r}
	}
	result = result.Clone()
	for i := range built {
		built[i].Release()
	}
	return result
}
