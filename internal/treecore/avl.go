package treecore

// height returns n's stored height, treating the nil handle as height 0.
func height[H comparable, K any](acc Accessor[H, K], n H) int {
	if acc.IsNil(n) {
		return 0
	}
	return acc.Height(n)
}

// updateHeight recomputes and stores n's height from its children's
// current heights.
func updateHeight[H comparable, K any](acc Accessor[H, K], n H) {
	l := height(acc, acc.Left(n))
	r := height(acc, acc.Right(n))
	if l > r {
		acc.SetHeight(n, l+1)
	} else {
		acc.SetHeight(n, r+1)
	}
}

// balanceFactor returns height(left) - height(right).
func balanceFactor[H comparable, K any](acc Accessor[H, K], n H) int {
	return height(acc, acc.Left(n)) - height(acc, acc.Right(n))
}

// avlRotateLeft wraps RotateLeft with the AVL height-maintenance order:
// the demoted node's height is recomputed before its new parent's.
func avlRotateLeft[H comparable, K any](acc Accessor[H, K], root, r H) H {
	pivot := acc.Right(r)
	root = RotateLeft(acc, root, r)
	updateHeight(acc, r)
	updateHeight(acc, pivot)
	return root
}

// avlRotateRight is the mirror of avlRotateLeft.
func avlRotateRight[H comparable, K any](acc Accessor[H, K], root, r H) H {
	pivot := acc.Left(r)
	root = RotateRight(acc, root, r)
	updateHeight(acc, r)
	updateHeight(acc, pivot)
	return root
}

// RebalanceAt inspects n's balance factor (n.height must already be
// current) and, if out of the [-1, 1] range, performs the appropriate
// single or double rotation. It returns the possibly-updated tree root, the
// node now occupying n's former position, and whether a rotation occurred.
func RebalanceAt[H comparable, K any](acc Accessor[H, K], root, n H) (H, H, bool) {
	bf := balanceFactor(acc, n)
	switch {
	case bf > 1:
		if balanceFactor(acc, acc.Left(n)) < 0 {
			// Left-Right case: rotate left child left first.
			root = avlRotateLeft(acc, root, acc.Left(n))
		}
		newSub := acc.Left(n)
		root = avlRotateRight(acc, root, n)
		return root, newSub, true

	case bf < -1:
		if balanceFactor(acc, acc.Right(n)) > 0 {
			// Right-Left case: rotate right child right first.
			root = avlRotateRight(acc, root, acc.Right(n))
		}
		newSub := acc.Right(n)
		root = avlRotateLeft(acc, root, n)
		return root, newSub, true
	}
	return root, n, false
}

// AVLInsert performs a plain BST insert and, if a new node was built, walks
// from it up to the root updating heights and rebalancing. The walk stops
// as soon as a rotation occurs, because a single rotation after an insert
// restores the pre-insert height of that subtree, so no ancestor further up
// can have changed balance.
func AVLInsert[H comparable, K any](acc Accessor[H, K], root H, key K, cmp Comparator[K]) InsertResult[H] {
	res := Insert(acc, root, key, cmp)
	if acc.IsNil(res.Inserted) {
		return res
	}
	root = res.NewRoot

	n := acc.Parent(res.Inserted)
	for !acc.IsNil(n) {
		updateHeight(acc, n)
		var rotated bool
		root, n, rotated = RebalanceAt(acc, root, n)
		if rotated {
			break
		}
		n = acc.Parent(n)
	}
	res.NewRoot = root
	return res
}

// AVLDelete performs a plain BST delete and walks upward from the returned
// rebalance anchor to the root, updating heights and rebalancing at every
// step. Unlike insertion, deletion rebalancing never stops early: a
// rotation during a delete walk can still change the height of an
// ancestor's subtree, so every ancestor must be re-examined.
func AVLDelete[H comparable, K any](acc Accessor[H, K], root, n H) DeleteResult[H] {
	res := Delete(acc, root, n)
	root = res.NewRoot

	anchor := res.Anchor
	for !acc.IsNil(anchor) {
		updateHeight(acc, anchor)
		var newSub H
		root, newSub, _ = RebalanceAt(acc, root, anchor)
		anchor = acc.Parent(newSub)
	}
	res.NewRoot = root
	return res
}
