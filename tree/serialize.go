package tree

import (
	"encoding/binary"
	"fmt"
	"math"

	"fortio.org/safecast"

	"frep/opcode"
)

// templateTag opens every encoded template stream.
const templateTag = 'T'

// appendQuoted writes s between double quotes, escaping '"' and '\'
// with a backslash. There is no length prefix: decoders scan for the
// closing unescaped quote.
func appendQuoted(out []byte, s string) []byte {
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return append(out, '"')
}

// Serialize encodes one template as a self-contained byte stream:
// the tag byte, the quoted name and doc, then one record per node in
// ordered() order with ids assigned densely from 0. Each record is the
// opcode byte followed by the constant's raw little-endian float64
// bits, or the variable's quoted name and doc, or nothing; binary
// nodes then reference their children as little-endian uint32 ids,
// rhs before lhs, unary nodes lhs only. Every referenced id is
// strictly lower than the referencing node's own id.
func Serialize(tpl *Template) ([]byte, error) {
	out := []byte{templateTag}
	out = appendQuoted(out, tpl.Name)
	out = appendQuoted(out, tpl.Doc)

	ids := make(map[*node]uint32)
	for _, n := range tpl.Root.ordered() {
		id, err := safecast.Conv[uint32](len(ids))
		if err != nil {
			return nil, fmt.Errorf("tree: too many nodes to serialize: %w", err)
		}
		out = append(out, byte(n.op))
		ids[n] = id

		switch n.op {
		case opcode.Const:
			out = binary.LittleEndian.AppendUint64(out, math.Float64bits(n.value))
		case opcode.Var:
			out = appendQuoted(out, tpl.VarNames[ID(n)])
			out = appendQuoted(out, tpl.VarDocs[ID(n)])
		}

		// Fixed wire order: rhs id precedes lhs id.
		switch opcode.Args(n.op) {
		case 2:
			out = binary.LittleEndian.AppendUint32(out, ids[n.rhs])
			fallthrough
		case 1:
			out = binary.LittleEndian.AppendUint32(out, ids[n.lhs])
		}
	}
	return out, nil
}

// Serialize encodes t wrapped in a template with empty name, doc and
// variable metadata.
func (t Tree) Serialize() ([]byte, error) {
	return Serialize(NewTemplate(t))
}
