// Package rbset provides a generic ordered-set container backed by a
// Red-Black tree: a self-balancing binary search tree that maintains
// O(log n) operations via a small set of color invariants (the root is
// black; red nodes never have a red child; every root-to-nil path has the
// same count of black nodes) rather than AVL's height-balance invariant.
//
// Like bstset and avlset, Set is generic over the node handle type H so the
// same insertion/deletion fixups (internal/treecore) run over either the
// owning-pointer or the index-into-slice node representation; see New and
// NewArrayBacked.
package rbset

import (
	"github.com/kael-dev/ordset/internal/arraynode"
	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
)

// Set is a self-balancing ordered set of keys of type K, stored in a
// Red-Black tree over node handles of type H.
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

// Add inserts key into the set, applying the Red-Black insertion fixup. It
// returns true iff the key was newly inserted.
func (s *Set[H, K]) Add(key K) bool {
	res := treecore.RBInsert(s.acc, s.root, key, s.cmp)
	s.root = res.NewRoot
	if s.acc.IsNil(res.Inserted) {
		return false
	}
	s.count++
	return true
}

// Remove deletes key from the set, applying the Red-Black deletion fixup.
// It returns true iff a key was removed.
func (s *Set[H, K]) Remove(key K) bool {
	res := treecore.Search(s.acc, s.root, key, s.cmp)
	if s.acc.IsNil(res.Found) {
		return false
	}
	s.root = treecore.RBDelete(s.acc, s.root, res.Found)
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

// Accessor exposes the underlying node accessor for package fuzz's
// validators.
func (s *Set[H, K]) Accessor() treecore.Accessor[H, K] { return s.acc }

// Root exposes the tree's root handle, for the same reason as Accessor.
func (s *Set[H, K]) Root() H { return s.root }

// Color reports the color of the node holding key, and whether key is
// present. It exists mainly so tests can assert on the exact coloring
// produced by the insertion/deletion fixups.
func (s *Set[H, K]) Color(key K) (treecore.Color, bool) {
	res := treecore.Search(s.acc, s.root, key, s.cmp)
	if s.acc.IsNil(res.Found) {
		return treecore.Black, false
	}
	return s.acc.Color(res.Found), true
}
