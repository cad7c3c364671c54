package testkit

import (
	"fmt"

	"frep/opcode"
	"frep/tree"
)

// CheckRankInvariants verifies the rank rules over every node
// reachable from t:
// 1) leaves have rank 0
// 2) every parent outranks each of its children strictly
func CheckRankInvariants(t tree.Tree) error {
	for _, n := range t.Ordered() {
		if opcode.Args(n.Op()) == 0 {
			if n.Rank() != 0 {
				return fmt.Errorf("leaf %v has rank %d", n.Op(), n.Rank())
			}
			continue
		}
		if n.Rank() <= n.Lhs().Rank() {
			return fmt.Errorf("%v rank %d does not exceed lhs rank %d", n.Op(), n.Rank(), n.Lhs().Rank())
		}
		if !n.Rhs().IsEmpty() && n.Rank() <= n.Rhs().Rank() {
			return fmt.Errorf("%v rank %d does not exceed rhs rank %d", n.Op(), n.Rank(), n.Rhs().Rank())
		}
	}
	return nil
}

// CheckTopologicalOrder verifies that Ordered lists every node exactly
// once and never lists a node before one of its children.
func CheckTopologicalOrder(t tree.Tree) error {
	pos := make(map[tree.ID]int)
	for i, n := range t.Ordered() {
		if prev, dup := pos[n.ID()]; dup {
			return fmt.Errorf("node %v listed twice: positions %d and %d", n.Op(), prev, i)
		}
		pos[n.ID()] = i
		for _, ch := range []tree.Tree{n.Lhs(), n.Rhs()} {
			if ch.IsEmpty() {
				continue
			}
			at, ok := pos[ch.ID()]
			if !ok {
				return fmt.Errorf("%v listed before its %v child", n.Op(), ch.Op())
			}
			if at >= i {
				return fmt.Errorf("%v child of %v listed at %d, parent at %d", ch.Op(), n.Op(), at, i)
			}
		}
	}
	return nil
}
