package tree

import (
	"fmt"
	"math"

	"frep/opcode"
)

// opKey indexes interned operation nodes by opcode and child identity.
type opKey struct {
	op  opcode.Opcode
	lhs *node
	rhs *node
}

// Cache is the interning store behind a family of trees. Constants are
// keyed by their IEEE bit pattern (so NaN constants intern like any
// other value), operations by opcode plus child identity. Var nodes
// are never interned: every Var call yields a distinct leaf.
//
// A Cache holds the three canonical coordinate variables X, Y and Z,
// created once per cache; Remap substitutes exactly those three.
//
// Not goroutine-safe.
type Cache struct {
	consts map[uint64]*node
	ops    map[opKey]*node

	x, y, z *node
}

// NewCache returns an empty interning store with fresh X, Y and Z
// variables. Caches are independent: trees from different caches must
// never be combined.
func NewCache() *Cache {
	c := &Cache{
		consts: make(map[uint64]*node, 64),
		ops:    make(map[opKey]*node, 64),
	}
	// The cache keeps one reference on each coordinate variable so
	// they outlive every expression built from them.
	c.x = c.newVar()
	c.y = c.newVar()
	c.z = c.newVar()
	return c
}

// X returns the canonical X coordinate variable. The caller owns the
// returned reference.
func (c *Cache) X() Tree { return c.lend(c.x) }

// Y returns the canonical Y coordinate variable.
func (c *Cache) Y() Tree { return c.lend(c.y) }

// Z returns the canonical Z coordinate variable.
func (c *Cache) Z() Tree { return c.lend(c.z) }

// Constant returns the canonical node for value v, creating and
// registering it on first use. The caller owns the returned reference.
func (c *Cache) Constant(v float64) Tree {
	key := math.Float64bits(v)
	if n, ok := c.consts[key]; ok {
		return c.lend(n)
	}
	n := &node{op: opcode.Const, value: v, refs: 1, cache: c}
	c.consts[key] = n
	return Tree{n}
}

// Var returns a fresh free variable. Unlike constants and operations,
// variables are not interned: every call yields a distinct node.
func (c *Cache) Var() Tree {
	return Tree{c.newVar()}
}

func (c *Cache) newVar() *node {
	return &node{op: opcode.Var, refs: 1, cache: c}
}

// Operation returns the canonical node for op applied to the given
// operands, interning a new node when the combination is first seen.
// An empty Tree marks an absent operand. The operand count must match
// the opcode's arity, Pow requires an integral constant exponent and
// NthRoot a positive integral constant degree; violations are reported
// as errors matching ErrArityMismatch, ErrNonIntegralExponent and
// ErrInvalidRootDegree. The caller owns the returned reference; the
// operand references stay with the caller.
func (c *Cache) Operation(op opcode.Opcode, lhs, rhs Tree) (Tree, error) {
	if !opcode.Valid(op) || op == opcode.Const || op == opcode.Var {
		panic(fmt.Sprintf("tree: Operation on non-operator opcode %v", op))
	}
	c.claim(lhs.n)
	c.claim(rhs.n)

	ok := false
	switch opcode.Args(op) {
	case 0:
		ok = lhs.n == nil && rhs.n == nil
	case 1:
		ok = lhs.n != nil && rhs.n == nil
	case 2:
		ok = lhs.n != nil && rhs.n != nil
	}
	if !ok {
		return Tree{}, fmt.Errorf("%w: %v takes %d operand(s)", ErrArityMismatch, op, opcode.Args(op))
	}

	switch op {
	case opcode.Pow:
		if rhs.n.op != opcode.Const || rhs.n.value != math.Round(rhs.n.value) {
			return Tree{}, fmt.Errorf("%w: got %s", ErrNonIntegralExponent, describe(rhs.n))
		}
	case opcode.NthRoot:
		if rhs.n.op != opcode.Const || rhs.n.value != math.Round(rhs.n.value) || rhs.n.value <= 0 {
			return Tree{}, fmt.Errorf("%w: got %s", ErrInvalidRootDegree, describe(rhs.n))
		}
	}

	key := opKey{op: op, lhs: lhs.n, rhs: rhs.n}
	if n, ok := c.ops[key]; ok {
		return c.lend(n), nil
	}

	var rank uint32
	for _, ch := range [...]*node{lhs.n, rhs.n} {
		if ch != nil && ch.rank >= rank {
			rank = ch.rank + 1
		}
	}
	n := &node{op: op, lhs: lhs.n, rhs: rhs.n, rank: rank, refs: 1, cache: c}
	// Each parent edge owns a reference on its child.
	if lhs.n != nil {
		lhs.n.refs++
	}
	if rhs.n != nil {
		rhs.n.refs++
	}
	c.ops[key] = n
	return Tree{n}, nil
}

// describe names an operand in precondition errors.
func describe(n *node) string {
	if n.op == opcode.Const {
		return fmt.Sprintf("constant %g", n.value)
	}
	return n.op.String()
}

// claim checks that an operand belongs to this cache. Mixing caches is
// a programming error, not a recoverable condition.
func (c *Cache) claim(n *node) {
	if n != nil && n.cache != c {
		panic("tree: operand belongs to a different cache")
	}
}

// lend hands out one more owned reference to an existing node.
func (c *Cache) lend(n *node) Tree {
	n.refs++
	return Tree{n}
}

// release drops one reference from n and tears down every node whose
// count reaches zero. The walk is iterative so graph depth never
// translates into stack depth.
func (c *Cache) release(n *node) {
	n.refs--
	if n.refs > 0 {
		return
	}
	if n.refs < 0 {
		panic("tree: release of an already-released tree")
	}
	dead := []*node{n}
	for len(dead) > 0 {
		m := dead[len(dead)-1]
		dead = dead[:len(dead)-1]
		c.retire(m)
		for _, ch := range [...]*node{m.lhs, m.rhs} {
			if ch == nil {
				continue
			}
			ch.refs--
			if ch.refs == 0 {
				dead = append(dead, ch)
			}
		}
	}
}

// retire removes a dying node's interning entry. The entry is deleted
// only when it still maps to this exact node: a structurally identical
// node may already have been interned under the same key, and its
// entry must survive.
func (c *Cache) retire(m *node) {
	switch m.op {
	case opcode.Var:
		// never interned
	case opcode.Const:
		key := math.Float64bits(m.value)
		if c.consts[key] == m {
			delete(c.consts, key)
		}
	default:
		key := opKey{op: m.op, lhs: m.lhs, rhs: m.rhs}
		if c.ops[key] == m {
			delete(c.ops, key)
		}
	}
}
