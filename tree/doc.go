// Package tree builds immutable, hash-consed scalar expression DAGs.
//
// Every structurally identical subexpression is represented by exactly
// one node, located through a per-Cache interning table, so common
// subexpressions are eliminated at construction time. Trees are
// reference-counted handles; construction, substitution (Remap) and
// the canonical binary encoding (Serialize/Deserialize) all preserve
// maximal sharing.
//
// A Cache and every Tree built from it are confined to a single
// goroutine. Callers that share a Cache across goroutines must
// serialize all access externally.
package tree
