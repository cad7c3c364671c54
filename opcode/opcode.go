package opcode

import "fmt"

// Opcode identifies one operation kind in the expression graph.
// The numeric values are written verbatim into encoded templates,
// so they must never be reordered or reused.
type Opcode uint8

const (
	Invalid Opcode = iota

	Const
	Var

	Square
	Sqrt
	Neg
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Exp

	Add
	Mul
	Min
	Max
	Sub
	Div
	Atan2
	Pow
	NthRoot
	Mod
	NanFill

	lastOp
)

// Args returns the operand arity of op: 0, 1 or 2.
func Args(op Opcode) int {
	switch {
	case op >= Add && op < lastOp:
		return 2
	case op >= Square && op <= Exp:
		return 1
	default:
		return 0
	}
}

// Valid reports whether op names a real operation.
func Valid(op Opcode) bool {
	return op > Invalid && op < lastOp
}

var names = [...]string{
	Invalid: "invalid",
	Const:   "const",
	Var:     "var",
	Square:  "square",
	Sqrt:    "sqrt",
	Neg:     "neg",
	Sin:     "sin",
	Cos:     "cos",
	Tan:     "tan",
	Asin:    "asin",
	Acos:    "acos",
	Atan:    "atan",
	Exp:     "exp",
	Add:     "add",
	Mul:     "mul",
	Min:     "min",
	Max:     "max",
	Sub:     "sub",
	Div:     "div",
	Atan2:   "atan2",
	Pow:     "pow",
	NthRoot: "nth-root",
	Mod:     "mod",
	NanFill: "nan-fill",
}

// String returns the lower-case operation name.
func (op Opcode) String() string {
	if int(op) < len(names) {
		return names[op]
	}
	return fmt.Sprintf("opcode(%d)", uint8(op))
}
