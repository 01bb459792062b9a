// Package bstset provides a generic ordered-set container backed by an
// unbalanced binary search tree.
//
// This implementation **does not** balance itself. If self-balancing
// behavior is required, use avlset or rbset, which layer balancing on top
// of the same underlying algorithm kernel (internal/treecore).
//
// Keys must have a strict total order, supplied as a three-way comparator:
// negative if a < b, zero if a == b, positive if a > b. The comparator must
// be consistent and transitive, or tree behavior is undefined.
//
// # Node representations
//
// Set is generic over the node handle type H, so the same algorithms run
// over either of the two concrete representations offered by this module:
// New returns a Set backed by owning-pointer nodes (internal/linkednode);
// NewArrayBacked returns one backed by index-into-slice nodes
// (internal/arraynode), whose storage grows on insert and is never
// compacted on delete.
package bstset

import (
	"github.com/kael-dev/ordset/internal/arraynode"
	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
)

// Set is an ordered set of keys of type K, stored in an unbalanced binary
// search tree over node handles of type H.
type Set[H comparable, K any] struct {
	acc   treecore.Accessor[H, K]
	root  H
	cmp   treecore.Comparator[K]
	count int
}

// New returns an empty Set backed by owning-pointer (linked) nodes.
func New[K any](cmp treecore.Comparator[K]) *Set[*linkednode.Node[K], K] {
	acc := linkednode.NewAccessor[K]()
	return &Set[*linkednode.Node[K], K]{acc: acc, root: acc.NilHandle(), cmp: cmp}
}

// NewArrayBacked returns an empty Set backed by index-into-slice (array)
// nodes.
func NewArrayBacked[K any](cmp treecore.Comparator[K]) *Set[int, K] {
	st := arraynode.NewStorage[K]()
	return &Set[int, K]{acc: st, root: st.NilHandle(), cmp: cmp}
}

// Count returns the number of keys currently stored.
func (s *Set[H, K]) Count() int { return s.count }

// Contains reports whether key is present in the set.
func (s *Set[H, K]) Contains(key K) bool {
	res := treecore.Search(s.acc, s.root, key, s.cmp)
	return !s.acc.IsNil(res.Found)
}

// Add inserts key into the set. It returns true iff the key was newly
// inserted; if the key was already present, the set is unchanged.
func (s *Set[H, K]) Add(key K) bool {
	res := treecore.Insert(s.acc, s.root, key, s.cmp)
	s.root = res.NewRoot
	if s.acc.IsNil(res.Inserted) {
		return false
	}
	s.count++
	return true
}

// Remove deletes key from the set. It returns true iff a key was removed.
func (s *Set[H, K]) Remove(key K) bool {
	res := treecore.Search(s.acc, s.root, key, s.cmp)
	if s.acc.IsNil(res.Found) {
		return false
	}
	del := treecore.Delete(s.acc, s.root, res.Found)
	s.root = del.NewRoot
	s.count--
	return true
}

// Clear drops every node; Count becomes 0.
func (s *Set[H, K]) Clear() {
	s.root = s.acc.NilHandle()
	s.count = 0
}

// Keys returns every key in the set, in ascending order.
func (s *Set[H, K]) Keys() []K {
	return treecore.Keys(s.acc, s.root)
}

// String returns a compact textual rendering of the tree, suitable as a
// fuzz-failure snapshot.
func (s *Set[H, K]) String() string {
	return treecore.Render(s.acc, s.root)
}

// Accessor exposes the underlying node accessor, so validators in package
// fuzz can walk the tree structurally without depending on bstset's
// internals.
func (s *Set[H, K]) Accessor() treecore.Accessor[H, K] { return s.acc }

// Root exposes the tree's root handle, for the same reason as Accessor.
func (s *Set[H, K]) Root() H { return s.root }
