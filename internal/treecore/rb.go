package treecore

// isBlack reports whether n is black, treating the nil handle as
// conceptually black (Red-Black invariant R2).
func isBlack[H comparable, K any](acc Accessor[H, K], n H) bool {
	return acc.IsNil(n) || acc.Color(n) == Black
}

// isRed is the complement of isBlack.
func isRed[H comparable, K any](acc Accessor[H, K], n H) bool {
	return !isBlack(acc, n)
}

// RBInsert performs a plain BST insert; if a new node was built it is
// colored red and the insertion fixup (cases I1-I6) restores the
// Red-Black invariants.
func RBInsert[H comparable, K any](acc Accessor[H, K], root H, key K, cmp Comparator[K]) InsertResult[H] {
	res := Insert(acc, root, key, cmp)
	if acc.IsNil(res.Inserted) {
		return res
	}
	root = res.NewRoot
	acc.SetColor(res.Inserted, Red)
	root = rbInsertFixup(acc, root, res.Inserted)
	res.NewRoot = root
	return res
}

// rbInsertFixup walks from the freshly inserted red node toward the root,
// applying cases I1-I6 (each marked by a comment below) until the tree's
// Red-Black invariants are restored.
func rbInsertFixup[H comparable, K any](acc Accessor[H, K], root, node H) H {
	for {
		if acc.Equal(node, root) {
			break // I3: the loop reached the root.
		}
		parent := acc.Parent(node)
		if acc.Color(parent) == Black {
			break // I1: a black parent can take a red child; done.
		}
		grandparent := acc.Parent(parent)
		if acc.IsNil(grandparent) {
			// I4: parent is red and has no parent of its own (it is the
			// root). Repaint it black and stop.
			acc.SetColor(parent, Black)
			break
		}

		parentIsLeft := acc.Equal(parent, acc.Left(grandparent))
		var uncle H
		if parentIsLeft {
			uncle = acc.Right(grandparent)
		} else {
			uncle = acc.Left(grandparent)
		}

		if isRed(acc, uncle) {
			// I2: parent and uncle both red. Push the violation up to
			// the grandparent and continue from there.
			acc.SetColor(parent, Black)
			acc.SetColor(uncle, Black)
			acc.SetColor(grandparent, Red)
			node = grandparent
			continue
		}

		// Uncle is black (or nil). node is either the inner or the outer
		// grandchild relative to parent's orientation under grandparent.
		nodeIsLeft := acc.Equal(node, acc.Left(parent))
		if parentIsLeft {
			if !nodeIsLeft {
				// I5: node is the inner grandchild (right child of a
				// left-child parent). Rotate at parent to convert this
				// into the outer case (I6).
				node = parent
				root = RotateLeft(acc, root, node)
				parent = acc.Parent(node)
			}
			// I6: outer grandchild. Rotate at the grandparent and
			// recolor; this always terminates the fixup.
			acc.SetColor(parent, Black)
			acc.SetColor(grandparent, Red)
			root = RotateRight(acc, root, grandparent)
		} else {
			if nodeIsLeft {
				// I5 mirrored.
				node = parent
				root = RotateRight(acc, root, node)
				parent = acc.Parent(node)
			}
			// I6 mirrored.
			acc.SetColor(parent, Black)
			acc.SetColor(grandparent, Red)
			root = RotateLeft(acc, root, grandparent)
		}
		break
	}
	acc.SetColor(root, Black)
	return root
}

// RBDelete removes z from the tree, preserving the Red-Black invariants.
//
// Phase A performs the standard BST substitution, aware of the
// two-children case: if z has two non-nil children it is spliced with its
// in-order successor y (all relevant pointer fields are relinked and y
// takes on z's color), reducing the problem to removing a node with at
// most one non-nil child.
//
// Phase B fixes up the tree if the node actually spliced out of the
// structure was black: a black node's removal shortens one root-to-nil
// path by one black node, which rbDeleteFixup (cases D1-D6) repairs.
func RBDelete[H comparable, K any](acc Accessor[H, K], root, z H) H {
	y := z
	yOriginalColor := acc.Color(y)
	var x, xParent H

	switch {
	case acc.IsNil(acc.Left(z)):
		x = acc.Right(z)
		xParent = acc.Parent(z)
		root = shift(acc, root, z, acc.Right(z))

	case acc.IsNil(acc.Right(z)):
		x = acc.Left(z)
		xParent = acc.Parent(z)
		root = shift(acc, root, z, acc.Left(z))

	default:
		y = Minimum(acc, acc.Right(z))
		yOriginalColor = acc.Color(y)
		x = acc.Right(y)
		if acc.Equal(acc.Parent(y), z) {
			xParent = y
		} else {
			xParent = acc.Parent(y)
			root = shift(acc, root, y, acc.Right(y))
			acc.SetRight(y, acc.Right(z))
			acc.SetParent(acc.Right(y), y)
		}
		root = shift(acc, root, z, y)
		acc.SetLeft(y, acc.Left(z))
		acc.SetParent(acc.Left(y), y)
		acc.SetColor(y, acc.Color(z))
	}

	if yOriginalColor == Black {
		root = rbDeleteFixup(acc, root, x, xParent)
	}
	return root
}

// rbDeleteFixup restores the Red-Black invariants after a black node has
// been spliced out of the tree. x is the node that moved into the removed
// node's slot (possibly the nil handle); parent is x's parent, tracked
// explicitly because the nil handle carries no real parent back-reference.
//
// Cases D1-D6 are marked by comments below. The close and distant nephews
// are re-fetched after every rotation — in particular after D3's rotation,
// before testing D5/D6.
func rbDeleteFixup[H comparable, K any](acc Accessor[H, K], root, x, parent H) H {
	for !acc.Equal(x, root) && isBlack(acc, x) {
		if acc.Equal(x, acc.Left(parent)) {
			sibling := acc.Right(parent)

			if isRed(acc, sibling) {
				// D3: red sibling. Rotate it into the parent's slot and
				// recolor so the (black) former close nephew becomes the
				// new sibling.
				acc.SetColor(sibling, Black)
				acc.SetColor(parent, Red)
				root = RotateLeft(acc, root, parent)
				sibling = acc.Right(parent)
			}

			close := acc.Left(sibling)
			distant := acc.Right(sibling)

			switch {
			case isRed(acc, distant):
				// D6: distant nephew red. One rotation finishes the
				// fixup regardless of the close nephew's color.
				acc.SetColor(sibling, acc.Color(parent))
				acc.SetColor(parent, Black)
				acc.SetColor(distant, Black)
				root = RotateLeft(acc, root, parent)
				x = root

			case isRed(acc, close):
				// D5: close nephew red, distant black. Rotate at the
				// sibling to turn the red nephew into the new distant
				// nephew, then fall through to D6.
				acc.SetColor(close, Black)
				acc.SetColor(sibling, Red)
				root = RotateRight(acc, root, sibling)
				sibling = acc.Right(parent)
				distant = acc.Right(sibling)

				acc.SetColor(sibling, acc.Color(parent))
				acc.SetColor(parent, Black)
				acc.SetColor(distant, Black)
				root = RotateLeft(acc, root, parent)
				x = root

			case isRed(acc, parent):
				// D4: parent red, both nephews black. Swap parent/sibling
				// colors; done.
				acc.SetColor(sibling, Red)
				acc.SetColor(parent, Black)
				x = root

			default:
				// D1: parent, sibling and both nephews all black. Paint
				// the sibling red and ascend (D2 terminates when this
				// reaches the root).
				acc.SetColor(sibling, Red)
				x = parent
				parent = acc.Parent(parent)
			}
		} else {
			// Mirror of the above with left/right exchanged.
			sibling := acc.Left(parent)

			if isRed(acc, sibling) {
				acc.SetColor(sibling, Black)
				acc.SetColor(parent, Red)
				root = RotateRight(acc, root, parent)
				sibling = acc.Left(parent)
			}

			close := acc.Right(sibling)
			distant := acc.Left(sibling)

			switch {
			case isRed(acc, distant):
				acc.SetColor(sibling, acc.Color(parent))
				acc.SetColor(parent, Black)
				acc.SetColor(distant, Black)
				root = RotateRight(acc, root, parent)
				x = root

			case isRed(acc, close):
				acc.SetColor(close, Black)
				acc.SetColor(sibling, Red)
				root = RotateLeft(acc, root, sibling)
				sibling = acc.Left(parent)
				distant = acc.Left(sibling)

				acc.SetColor(sibling, acc.Color(parent))
				acc.SetColor(parent, Black)
				acc.SetColor(distant, Black)
				root = RotateRight(acc, root, parent)
				x = root

			case isRed(acc, parent):
				acc.SetColor(sibling, Red)
				acc.SetColor(parent, Black)
				x = root

			default:
				acc.SetColor(sibling, Red)
				x = parent
				parent = acc.Parent(parent)
			}
		}
	}
	acc.SetColor(x, Black)
	return root
}
