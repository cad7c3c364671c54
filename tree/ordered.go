package tree

// ordered lists every node reachable from t exactly once, ranks
// ascending, ties broken by first-discovery order under breadth-first
// traversal (lhs enqueued before rhs). Children therefore appear
// strictly before every one of their parents, which is what lets the
// serializer hand out dense ids that only ever point backwards.
func (t Tree) ordered() []*node {
	if t.n == nil {
		return nil
	}
	seen := map[*node]bool{nil: true}
	queue := []*node{t.n}
	var byRank [][]*node

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] {
			continue
		}
		seen[n] = true
		queue = append(queue, n.lhs, n.rhs)
		for len(byRank) <= int(n.rank) {
			byRank = append(byRank, nil)
		}
		byRank[n.rank] = append(byRank[n.rank], n)
	}

	var out []*node
	for _, bucket := range byRank {
		out = append(out, bucket...)
	}
	return out
}

// Ordered returns every node reachable from t, each exactly once,
// children before parents (ranks ascending, breadth-first discovery
// order inside a rank). The elements are borrowed views: they must not
// be released and are valid while t is held.
func (t Tree) Ordered() []Tree {
	nodes := t.ordered()
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Tree, len(nodes))
	for i, n := range nodes {
		out[i] = Tree{n}
	}
	return out
}
