package tree

import "frep/opcode"

// mustOp builds operations whose preconditions are guaranteed by the
// calling constructor. An error here is a bug in this package.
func (c *Cache) mustOp(op opcode.Opcode, lhs, rhs Tree) Tree {
	t, err := c.Operation(op, lhs, rhs)
	if err != nil {
		panic(err)
	}
	return t
}

// Square returns a*a as a single primitive node.
func (c *Cache) Square(a Tree) Tree { return c.mustOp(opcode.Square, a, Tree{}) }

// Sqrt returns the square root of a.
func (c *Cache) Sqrt(a Tree) Tree { return c.mustOp(opcode.Sqrt, a, Tree{}) }

// Neg returns -a.
func (c *Cache) Neg(a Tree) Tree { return c.mustOp(opcode.Neg, a, Tree{}) }

// Abs returns |a|. There is no primitive opcode for it: the expression
// is max(a, -a).
func (c *Cache) Abs(a Tree) Tree {
	neg := c.Neg(a)
	defer neg.Release()
	return c.Max(a, neg)
}

// Sin returns sin(a).
func (c *Cache) Sin(a Tree) Tree { return c.mustOp(opcode.Sin, a, Tree{}) }

// Cos returns cos(a).
func (c *Cache) Cos(a Tree) Tree { return c.mustOp(opcode.Cos, a, Tree{}) }

// Tan returns tan(a).
func (c *Cache) Tan(a Tree) Tree { return c.mustOp(opcode.Tan, a, Tree{}) }

// Asin returns asin(a).
func (c *Cache) Asin(a Tree) Tree { return c.mustOp(opcode.Asin, a, Tree{}) }

// Acos returns acos(a).
func (c *Cache) Acos(a Tree) Tree { return c.mustOp(opcode.Acos, a, Tree{}) }

// Atan returns atan(a).
func (c *Cache) Atan(a Tree) Tree { return c.mustOp(opcode.Atan, a, Tree{}) }

// Exp returns e**a.
func (c *Cache) Exp(a Tree) Tree { return c.mustOp(opcode.Exp, a, Tree{}) }

// Add returns a+b.
func (c *Cache) Add(a, b Tree) Tree { return c.mustOp(opcode.Add, a, b) }

// Mul returns a*b.
func (c *Cache) Mul(a, b Tree) Tree { return c.mustOp(opcode.Mul, a, b) }

// Min returns the smaller of a and b.
func (c *Cache) Min(a, b Tree) Tree { return c.mustOp(opcode.Min, a, b) }

// Max returns the larger of a and b.
func (c *Cache) Max(a, b Tree) Tree { return c.mustOp(opcode.Max, a, b) }

// Sub returns a-b.
func (c *Cache) Sub(a, b Tree) Tree { return c.mustOp(opcode.Sub, a, b) }

// Div returns a/b.
func (c *Cache) Div(a, b Tree) Tree { return c.mustOp(opcode.Div, a, b) }

// Atan2 returns atan2(a, b).
func (c *Cache) Atan2(a, b Tree) Tree { return c.mustOp(opcode.Atan2, a, b) }

// Pow returns a**b. The exponent must be an integral constant; the
// error matches ErrNonIntegralExponent otherwise.
func (c *Cache) Pow(a, b Tree) (Tree, error) { return c.Operation(opcode.Pow, a, b) }

// NthRoot returns the b-th root of a. The degree must be a positive
// integral constant; the error matches ErrInvalidRootDegree otherwise.
func (c *Cache) NthRoot(a, b Tree) (Tree, error) { return c.Operation(opcode.NthRoot, a, b) }

// Mod returns a modulo b.
func (c *Cache) Mod(a, b Tree) Tree { return c.mustOp(opcode.Mod, a, b) }

// NanFill returns a where a is defined and b where a evaluates to NaN.
func (c *Cache) NanFill(a, b Tree) Tree { return c.mustOp(opcode.NanFill, a, b) }
