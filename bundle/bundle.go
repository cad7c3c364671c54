// Package bundle wraps one encoded expression template in a versioned,
// digest-checked envelope for interchange with external tooling. The
// envelope is msgpack-encoded; persisting it anywhere is the caller's
// job, the package only speaks io.Writer and io.Reader.
package bundle

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"frep/tree"
)

// SchemaVersion is bumped whenever the envelope layout changes;
// readers reject every other version.
const SchemaVersion uint16 = 1

// Digest identifies a bundle by the SHA-256 of its canonical encoding.
type Digest = [sha256.Size]byte

var (
	ErrSchema = errors.New("bundle: unsupported schema version")
	ErrDigest = errors.New("bundle: digest does not match encoded payload")
)

// Bundle is the envelope around one canonically encoded template.
// Name and Doc duplicate the template's own header so tooling can
// list bundles without decoding the payload.
type Bundle struct {
	Schema  uint16
	Name    string
	Doc     string
	Digest  Digest
	Encoded []byte
}

// Pack serializes tpl and wraps the encoding.
func Pack(tpl *tree.Template) (*Bundle, error) {
	enc, err := tree.Serialize(tpl)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Schema:  SchemaVersion,
		Name:    tpl.Name,
		Doc:     tpl.Doc,
		Digest:  sha256.Sum256(enc),
		Encoded: enc,
	}, nil
}

// Verify recomputes the payload digest and checks the schema version.
func (b *Bundle) Verify() error {
	if b.Schema != SchemaVersion {
		return fmt.Errorf("%w: %d", ErrSchema, b.Schema)
	}
	if sha256.Sum256(b.Encoded) != b.Digest {
		return ErrDigest
	}
	return nil
}

// Unpack verifies the envelope and rebuilds the template through c.
// The caller owns the returned template's root reference.
func (b *Bundle) Unpack(c *tree.Cache) (*tree.Template, error) {
	if err := b.Verify(); err != nil {
		return nil, err
	}
	return tree.Deserialize(b.Encoded, c)
}

// Write msgpack-encodes the envelope to w.
func Write(w io.Writer, b *Bundle) error {
	return msgpack.NewEncoder(w).Encode(b)
}

// Read decodes one envelope from r and verifies it.
func Read(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := msgpack.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("bundle: decode: %w", err)
	}
	if err := b.Verify(); err != nil {
		return nil, err
	}
	return &b, nil
}
