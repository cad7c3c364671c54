package tree

import "errors"

// Construction errors. Operation wraps these with the offending opcode
// so callers can both match with errors.Is and report the context.
var (
	ErrArityMismatch       = errors.New("tree: operand count does not match opcode arity")
	ErrNonIntegralExponent = errors.New("tree: pow exponent must be an integral constant")
	ErrInvalidRootDegree   = errors.New("tree: nth-root degree must be a positive integral constant")
)

// Decoding errors.
var (
	ErrBadTag    = errors.New("tree: not a template stream")
	ErrTruncated = errors.New("tree: truncated template stream")
	ErrCorrupt   = errors.New("tree: corrupt template stream")
)
