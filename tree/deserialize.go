package tree

import (
	"encoding/binary"
	"fmt"
	"math"

	"frep/opcode"
)

// decoder is a cursor over one encoded template stream.
type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) byte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, ErrTruncated
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) uint32() (uint32, error) {
	if d.pos+4 > len(d.data) {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) float64() (float64, error) {
	if d.pos+8 > len(d.data) {
		return 0, ErrTruncated
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(d.data[d.pos:]))
	d.pos += 8
	return v, nil
}

// quoted reads one quoted string: a leading '"', characters with '\'
// escapes for '"' and '\', and a closing unescaped '"'.
func (d *decoder) quoted() (string, error) {
	open, err := d.byte()
	if err != nil {
		return "", err
	}
	if open != '"' {
		return "", fmt.Errorf("%w: expected quoted string at offset %d", ErrCorrupt, d.pos-1)
	}
	var s []byte
	for {
		c, err := d.byte()
		if err != nil {
			return "", err
		}
		switch c {
		case '"':
			return string(s), nil
		case '\\':
			esc, err := d.byte()
			if err != nil {
				return "", err
			}
			s = append(s, esc)
		default:
			s = append(s, c)
		}
	}
}

// Deserialize reconstructs a template from its canonical encoding,
// rebuilding every node through c so the decoded expression shares
// structure with everything else the cache holds. The caller owns the
// returned template's root reference. Errors match ErrBadTag,
// ErrTruncated or ErrCorrupt.
func Deserialize(data []byte, c *Cache) (*Template, error) {
	d := &decoder{data: data}

	tag, err := d.byte()
	if err != nil {
		return nil, err
	}
	if tag != templateTag {
		return nil, fmt.Errorf("%w: tag 0x%02x", ErrBadTag, tag)
	}
	name, err := d.quoted()
	if err != nil {
		return nil, err
	}
	doc, err := d.quoted()
	if err != nil {
		return nil, err
	}

	var nodes []Tree
	fail := func(err error) (*Template, error) {
		for i := range nodes {
			nodes[i].Release()
		}
		return nil, err
	}

	tpl := &Template{
		Name:     name,
		Doc:      doc,
		VarNames: make(map[ID]string),
		VarDocs:  make(map[ID]string),
	}

	for d.pos < len(d.data) {
		b, err := d.byte()
		if err != nil {
			return fail(err)
		}
		op := opcode.Opcode(b)
		if !opcode.Valid(op) {
			return fail(fmt.Errorf("%w: opcode 0x%02x at offset %d", ErrCorrupt, b, d.pos-1))
		}

		var t Tree
		switch op {
		case opcode.Const:
			v, err := d.float64()
			if err != nil {
				return fail(err)
			}
			t = c.Constant(v)

		case opcode.Var:
			varName, err := d.quoted()
			if err != nil {
				return fail(err)
			}
			varDoc, err := d.quoted()
			if err != nil {
				return fail(err)
			}
			t = c.Var()
			if varName != "" {
				tpl.VarNames[t.ID()] = varName
			}
			if varDoc != "" {
				tpl.VarDocs[t.ID()] = varDoc
			}

		default:
			var lhs, rhs Tree
			if opcode.Args(op) == 2 {
				id, err := d.uint32()
				if err != nil {
					return fail(err)
				}
				if int(id) >= len(nodes) {
					return fail(fmt.Errorf("%w: forward reference to node %d", ErrCorrupt, id))
				}
				rhs = nodes[id]
			}
			id, err := d.uint32()
			if err != nil {
				return fail(err)
			}
			if int(id) >= len(nodes) {
				return fail(fmt.Errorf("%w: forward reference to node %d", ErrCorrupt, id))
			}
			lhs = nodes[id]

			t, err = c.Operation(op, lhs, rhs)
			if err != nil {
				return fail(fmt.Errorf("%w: %v", ErrCorrupt, err))
			}
		}
		nodes = append(nodes, t)
	}

	if len(nodes) == 0 {
		return tpl, nil
	}
	// Children stay alive through their parents' edges; only the root
	// reference is handed to the caller.
	tpl.Root = nodes[len(nodes)-1]
	for i := 0; i < len(nodes)-1; i++ {
		nodes[i].Release()
	}
	return tpl, nil
}
