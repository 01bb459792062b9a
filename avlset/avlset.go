// Package avlset provides a generic ordered-set container backed by an
// AVL tree: a self-balancing binary search tree in which every node's left
// and right subtree heights differ by at most one.
//
// Like bstset, Set is generic over the node handle type H so the same
// balancing algorithms (internal/treecore) run over either the
// owning-pointer or the index-into-slice node representation; see New and
// NewArrayBacked.
package avlset

import (
	"github.com/kael-dev/ordset/internal/arraynode"
	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
)

// Set is a self-balancing ordered set of keys of type K, stored in an AVL
// tree over node handles of type H.
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

// Add inserts key into the set, rebalancing as needed. It returns true iff
// the key was newly inserted.
func (s *Set[H, K]) Add(key K) bool {
	res := treecore.AVLInsert(s.acc, s.root, key, s.cmp)
	s.root = res.NewRoot
	if s.acc.IsNil(res.Inserted) {
		return false
	}
	s.count++
	return true
}

// Remove deletes key from the set, rebalancing as needed. It returns true
// iff a key was removed.
func (s *Set[H, K]) Remove(key K) bool {
	res := treecore.Search(s.acc, s.root, key, s.cmp)
	if s.acc.IsNil(res.Found) {
		return false
	}
	del := treecore.AVLDelete(s.acc, s.root, res.Found)
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

// Accessor exposes the underlying node accessor for package fuzz's
// validators.
func (s *Set[H, K]) Accessor() treecore.Accessor[H, K] { return s.acc }

// Root exposes the tree's root handle, for the same reason as Accessor.
func (s *Set[H, K]) Root() H { return s.root }
