// Package linkednode implements the owning-pointer node representation:
// each node is an independently allocated record, and the nil handle is
// the Go nil pointer. It satisfies treecore.Accessor so the shared
// algorithm kernel in internal/treecore runs over it unmodified.
package linkednode

import "github.com/kael-dev/ordset/internal/treecore"

// Node is a single linked-representation tree node. It always carries both
// augmentation fields (height and color); a plain BST accessor simply never
// reads or writes them.
type Node[K any] struct {
	key                 K
	left, right, parent *Node[K]
	height              int
	color               treecore.Color
}

// Accessor implements treecore.Accessor[*Node[K], K] over linked nodes. It
// has no fields, so its zero value is ready to use; NewAccessor returns it.
type Accessor[K any] struct{}

// NewAccessor returns an Accessor for linked nodes of key type K. Accessor
// carries no state of its own: the nil handle is simply the Go nil pointer,
// so every linked-representation tree can share one Accessor value.
func NewAccessor[K any]() Accessor[K] {
	return Accessor[K]{}
}

func (Accessor[K]) NilHandle() *Node[K] { return nil }

func (Accessor[K]) IsNil(h *Node[K]) bool { return h == nil }

func (Accessor[K]) Equal(h1, h2 *Node[K]) bool { return h1 == h2 }

func (Accessor[K]) Left(n *Node[K]) *Node[K] { return n.left }

func (Accessor[K]) Right(n *Node[K]) *Node[K] { return n.right }

func (Accessor[K]) SetLeft(n, c *Node[K]) { n.left = c }

func (Accessor[K]) SetRight(n, c *Node[K]) { n.right = c }

func (Accessor[K]) Parent(n *Node[K]) *Node[K] { return n.parent }

func (Accessor[K]) SetParent(n, p *Node[K]) { n.parent = p }

func (Accessor[K]) Key(n *Node[K]) K { return n.key }

func (Accessor[K]) Build(key K) *Node[K] {
	return &Node[K]{key: key, color: treecore.Red, height: 1}
}

func (Accessor[K]) Height(n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (Accessor[K]) SetHeight(n *Node[K], h int) { n.height = h }

func (Accessor[K]) Color(n *Node[K]) treecore.Color {
	if n == nil {
		return treecore.Black
	}
	return n.color
}

func (Accessor[K]) SetColor(n *Node[K], c treecore.Color) {
	if n == nil {
		return
	}
	n.color = c
}
