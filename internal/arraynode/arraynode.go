// Package arraynode implements the index-into-parallel-slices node
// representation: a node handle is an integer index into vectors owned
// by the Storage value, and the nil handle is the sentinel -1.
//
// Storage grows its vectors on Build and does not reclaim indices on
// delete — a documented limitation carried over unchanged from the
// original source: deleted slots leak until the whole tree is dropped.
// No free-list is introduced.
package arraynode

import "github.com/kael-dev/ordset/internal/treecore"

// Nil is the sentinel "no node" index.
const Nil = -1

// Storage owns the parallel vectors backing one array-represented tree. It
// implements treecore.Accessor[int, K]. A Storage must not be shared
// between trees: handles are only meaningful relative to the Storage that
// produced them.
type Storage[K any] struct {
	keys                 []K
	left, right, parent  []int
	height               []int
	color                []treecore.Color
}

// NewStorage returns an empty Storage for key type K.
func NewStorage[K any]() *Storage[K] {
	return &Storage[K]{}
}

// Len returns the number of slots ever allocated, including slots that
// have since been spliced out of the tree and not reclaimed.
func (s *Storage[K]) Len() int { return len(s.keys) }

func (s *Storage[K]) NilHandle() int { return Nil }

func (s *Storage[K]) IsNil(h int) bool { return h == Nil }

func (s *Storage[K]) Equal(h1, h2 int) bool { return h1 == h2 }

func (s *Storage[K]) Left(n int) int { return s.left[n] }

func (s *Storage[K]) Right(n int) int { return s.right[n] }

func (s *Storage[K]) SetLeft(n, c int) { s.left[n] = c }

func (s *Storage[K]) SetRight(n, c int) { s.right[n] = c }

func (s *Storage[K]) Parent(n int) int { return s.parent[n] }

func (s *Storage[K]) SetParent(n, p int) { s.parent[n] = p }

func (s *Storage[K]) Key(n int) K { return s.keys[n] }

// Build grows every vector by one slot and returns its index. It never
// reuses an index freed by a prior delete.
func (s *Storage[K]) Build(key K) int {
	s.keys = append(s.keys, key)
	s.left = append(s.left, Nil)
	s.right = append(s.right, Nil)
	s.parent = append(s.parent, Nil)
	s.height = append(s.height, 1)
	s.color = append(s.color, treecore.Red)
	return len(s.keys) - 1
}

func (s *Storage[K]) Height(n int) int {
	if n == Nil {
		return 0
	}
	return s.height[n]
}

func (s *Storage[K]) SetHeight(n, h int) { s.height[n] = h }

func (s *Storage[K]) Color(n int) treecore.Color {
	if n == Nil {
		return treecore.Black
	}
	return s.color[n]
}

func (s *Storage[K]) SetColor(n int, c treecore.Color) {
	if n == Nil {
		return
	}
	s.color[n] = c
}

var _ treecore.Accessor[int, int] = (*Storage[int])(nil)
