package tree

import "frep/opcode"

// Tree is a reference-counted handle to one canonical expression node.
// The zero Tree is empty and marks an absent operand.
//
// Ownership: every Tree returned by a constructor (Constant, Var, X/Y/Z,
// Operation, the convenience operations, Remap, Deserialize and Clone)
// is an owned reference that the caller gives back exactly once with
// Release. Plain Go copies alias the same reference; use Clone for an
// additional one. Inspection methods (Lhs, Rhs, Ordered) return
// borrowed views that must not be released and stay valid only while
// the inspected reference is held.
type Tree struct {
	n *node
}

// IsEmpty reports whether t is the empty handle.
func (t Tree) IsEmpty() bool { return t.n == nil }

// ID returns the node's identity, or nil for the empty handle.
func (t Tree) ID() ID { return ID(t.n) }

// Same reports whether t and o are handles to the same node.
func (t Tree) Same(o Tree) bool { return t.n == o.n }

// Op returns the node's opcode, or opcode.Invalid for the empty handle.
func (t Tree) Op() opcode.Opcode {
	if t.n == nil {
		return opcode.Invalid
	}
	return t.n.op
}

// Value returns the constant payload. It is meaningful only when
// Op() == opcode.Const.
func (t Tree) Value() float64 {
	if t.n == nil {
		return 0
	}
	return t.n.value
}

// Rank returns the node's topological depth: 0 for leaves, otherwise
// one more than the highest-ranked child.
func (t Tree) Rank() uint32 {
	if t.n == nil {
		return 0
	}
	return t.n.rank
}

// Lhs returns a borrowed view of the first operand, empty for leaves.
func (t Tree) Lhs() Tree {
	if t.n == nil {
		return Tree{}
	}
	return Tree{t.n.lhs}
}

// Rhs returns a borrowed view of the second operand, empty unless the
// node is binary.
func (t Tree) Rhs() Tree {
	if t.n == nil {
		return Tree{}
	}
	return Tree{t.n.rhs}
}

// Clone takes an additional owned reference to the same node.
func (t Tree) Clone() Tree {
	if t.n == nil {
		return Tree{}
	}
	return t.n.cache.lend(t.n)
}

// Release gives back one owned reference. When the last reference to a
// node disappears the node is torn down, its interning entry retired
// and its child references dropped, cascading as far as needed.
// Release on the empty handle is a no-op; t becomes empty afterwards.
func (t *Tree) Release() {
	if t.n == nil {
		return
	}
	n := t.n
	t.n = nil
	n.cache.release(n)
}
