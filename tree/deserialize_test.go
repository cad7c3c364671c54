package tree_test

import (
	"bytes"
	"errors"
	"testing"

	"frep/tree"
)

func TestDeserializeRoundTrip(t *testing.T) {
	c := tree.NewCache()
	x := c.X()
	y := c.Y()
	sq := c.Square(x)
	p, err := c.Pow(y, c.Constant(2))
	if err != nil {
		t.Fatalf("pow: %v", err)
	}
	root := c.Sub(c.Sqrt(c.Add(sq, p)), c.Constant(1.5))

	tpl := tree.NewTemplate(root)
	tpl.Name = "circle"
	tpl.Doc = "implicit circle"
	tpl.SetVar(x, "x", "first axis")
	tpl.SetVar(y, "y", "second axis")

	enc, err := tree.Serialize(tpl)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	fresh := tree.NewCache()
	decoded, err := tree.Deserialize(enc, fresh)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if decoded.Name != "circle" || decoded.Doc != "implicit circle" {
		t.Fatalf("header lost: %q %q", decoded.Name, decoded.Doc)
	}

	again, err := tree.Serialize(decoded)
	if err != nil {
		t.Fatalf("re-serialize: %v", err)
	}
	if !bytes.Equal(enc, again) {
		t.Fatalf("round trip is not byte-identical:\n first %x\nsecond %x", enc, again)
	}
}

// Decoding into the cache that produced the stream resolves constants
// and operations back to their original nodes.
func TestDeserializeSharesWithinCache(t *testing.T) {
	c := tree.NewCache()
	root := c.Add(c.Constant(1), c.Constant(2))

	enc, err := root.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	decoded, err := tree.Deserialize(enc, c)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !decoded.Root.Same(root) {
		t.Fatalf("decoding into the producing cache must rebuild the same node")
	}
}

func TestDeserializeBadTag(t *testing.T) {
	if _, err := tree.Deserialize([]byte(`X""""`), tree.NewCache()); !errors.Is(err, tree.ErrBadTag) {
		t.Fatalf("got %v", err)
	}
}

func TestDeserializeTruncated(t *testing.T) {
	c := tree.NewCache()
	enc, err := c.Add(c.Constant(1), c.Constant(2)).Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, cut := range []int{1, 3, 6, len(enc) - 1} {
		if _, err := tree.Deserialize(enc[:cut], tree.NewCache()); !errors.Is(err, tree.ErrTruncated) {
			t.Fatalf("cut at %d: got %v", cut, err)
		}
	}
}

func TestDeserializeUnknownOpcode(t *testing.T) {
	enc := []byte{'T', '"', '"', '"', '"', 0xEE}
	if _, err := tree.Deserialize(enc, tree.NewCache()); !errors.Is(err, tree.ErrCorrupt) {
		t.Fatalf("got %v", err)
	}
}

func TestDeserializeForwardReference(t *testing.T) {
	c := tree.NewCache()
	enc, err := c.Add(c.Constant(1), c.Constant(2)).Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	// The add record's rhs id sits 8 bytes from the end; point it past
	// the node table.
	enc[len(enc)-8] = 0x7F
	if _, err := tree.Deserialize(enc, tree.NewCache()); !errors.Is(err, tree.ErrCorrupt) {
		t.Fatalf("got %v", err)
	}
}

func TestDeserializeUnterminatedString(t *testing.T) {
	enc := []byte{'T', '"', 'a', 'b'}
	if _, err := tree.Deserialize(enc, tree.NewCache()); !errors.Is(err, tree.ErrTruncated) {
		t.Fatalf("got %v", err)
	}
}
