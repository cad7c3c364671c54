package tree

import "frep/opcode"

// node is one vertex of the expression DAG. Apart from the reference
// count it is immutable after construction: op, value, children and
// rank never change, so sharing a node between parents is safe.
type node struct {
	op    opcode.Opcode
	value float64 // meaningful only when op == opcode.Const
	lhs   *node
	rhs   *node
	rank  uint32
	refs  int
	cache *Cache
}

// ID is the opaque identity of a node. Two trees are the same
// expression exactly when their IDs compare equal; IDs are valid map
// keys. An ID does not keep its node alive.
type ID *node
