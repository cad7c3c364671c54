package opcode

import "testing"

func TestArgs(t *testing.T) {
	cases := []struct {
		op   Opcode
		want int
	}{
		{Const, 0},
		{Var, 0},
		{Square, 1},
		{Exp, 1},
		{Add, 2},
		{NanFill, 2},
		{Invalid, 0},
	}
	for _, c := range cases {
		if got := Args(c.op); got != c.want {
			t.Fatalf("Args(%v) = %d, want %d", c.op, got, c.want)
		}
	}
}

func TestValid(t *testing.T) {
	if Valid(Invalid) {
		t.Fatalf("Invalid must not be valid")
	}
	if !Valid(Const) || !Valid(NanFill) {
		t.Fatalf("real opcodes must be valid")
	}
	if Valid(lastOp) || Valid(Opcode(200)) {
		t.Fatalf("out-of-range opcodes must not be valid")
	}
}

// Opcode values are written into encoded templates; this pins the
// assignment so an accidental reorder shows up as a test failure
// instead of a format break.
func TestWireValuesAreStable(t *testing.T) {
	pinned := []struct {
		op   Opcode
		wire uint8
	}{
		{Const, 1},
		{Var, 2},
		{Square, 3},
		{Exp, 12},
		{Add, 13},
		{NanFill, 23},
	}
	for _, p := range pinned {
		if uint8(p.op) != p.wire {
			t.Fatalf("%v encodes as %d, want %d", p.op, uint8(p.op), p.wire)
		}
	}
}

func TestString(t *testing.T) {
	if Add.String() != "add" {
		t.Fatalf("Add.String() = %q", Add.String())
	}
	if NthRoot.String() != "nth-root" {
		t.Fatalf("NthRoot.String() = %q", NthRoot.String())
	}
	if Opcode(200).String() != "opcode(200)" {
		t.Fatalf("out-of-range String() = %q", Opcode(200).String())
	}
}
