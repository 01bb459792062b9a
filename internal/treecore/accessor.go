// Package treecore implements the balanced-tree algorithm kernel shared by
// every set variant in this module: plain BST search/insert/delete,
// rotations, AVL rebalancing, and Red-Black insertion/deletion fixups.
//
// Every algorithm here is written once, against the Accessor contract, and
// works unmodified over any concrete node representation that satisfies it
// (see internal/linkednode and internal/arraynode). Algorithms never touch a
// node's fields directly; they call through Accessor. The Accessor is passed
// to every algorithm as an ordinary interface value, so each call through it
// is a dynamic method call; no representation-specific copy of an algorithm
// with direct field access is generated.
//
// Color is shared by every instantiation (including plain BST and AVL
// trees, which never read it) so that a single node representation can host
// all three variants.
package treecore

// Color is a Red-Black node color. The zero value is Red. The nil sentinel
// always reads as Black through Accessor.Color, and the algorithms color the
// root black explicitly.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Comparator defines a total order over K. It must return a negative number
// if a < b, zero if a == b, and a positive number if a > b. It must be
// consistent and transitive; undefined behavior results otherwise.
type Comparator[K any] func(a, b K) int

// Accessor is the capability set through which every algorithm in this
// package reads and writes a node's children, parent, key, color and
// height, independent of concrete representation.
//
// H is the node-handle type: a pointer for linked nodes, an integer index
// for array-packed nodes. H must be comparable so that IsNil/Equal can be
// expressed as ordinary equality by representations for which that's cheap,
// though implementations are free to define IsNil/Equal however fits their
// sentinel scheme.
type Accessor[H comparable, K any] interface {
	// NilHandle returns the sentinel "no node" handle.
	NilHandle() H
	// IsNil reports whether h is the sentinel "no node" handle.
	IsNil(h H) bool
	// Equal reports whether h1 and h2 denote the same node.
	Equal(h1, h2 H) bool

	// Left returns the left child of n, or the nil handle.
	Left(n H) H
	// Right returns the right child of n, or the nil handle.
	Right(n H) H
	// SetLeft sets n's left child to c.
	SetLeft(n, c H)
	// SetRight sets n's right child to c.
	SetRight(n, c H)

	// Parent returns n's parent, or the nil handle if n is the root.
	Parent(n H) H
	// SetParent sets n's parent back-reference to p.
	SetParent(n, p H)

	// Key returns n's key.
	Key(n H) K

	// Build allocates a new node with the given key and returns its handle.
	// The new node's left, right and parent are all the nil handle; its
	// height is 1 and its color is Red until an algorithm sets otherwise.
	Build(key K) H

	// Height returns n's stored height (AVL augmentation). Nil nodes have
	// height 0 by convention; implementations are not required to store
	// this for the nil sentinel, as long as Height(nilHandle) == 0.
	Height(n H) int
	// SetHeight stores n's height.
	SetHeight(n H, h int)

	// Color returns n's stored color (Red-Black augmentation). The nil
	// sentinel must always read as Black.
	Color(n H) Color
	// SetColor stores n's color. Implementations must silently ignore
	// attempts to color the nil sentinel (it is conceptually always
	// Black).
	SetColor(n H, c Color)
}
