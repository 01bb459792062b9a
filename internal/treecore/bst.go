package treecore

// Direction identifies which child slot a search hint refers to.
type Direction int

const (
	None Direction = iota
	LeftDir
	RightDir
)

// SearchResult is the outcome of Search: either the matching node, or a
// hint describing where a missing key would be inserted.
type SearchResult[H comparable] struct {
	Found H
	// Hint is the last node visited on a miss; Dir is the child slot
	// into which the searched-for key would be inserted. Hint is the nil
	// handle if and only if the tree was empty.
	Hint H
	Dir  Direction
}

// Search walks from root following comparator decisions. On a match it
// returns the found handle in Found. On a miss it returns a Hint: the last
// visited node, plus the direction the key would have been inserted.
func Search[H comparable, K any](acc Accessor[H, K], root H, key K, cmp Comparator[K]) SearchResult[H] {
	nilH := acc.NilHandle()
	var (
		parent H = nilH
		dir    Direction
	)
	curr := root
	for !acc.IsNil(curr) {
		c := cmp(key, acc.Key(curr))
		if c == 0 {
			return SearchResult[H]{Found: curr}
		}
		parent = curr
		if c < 0 {
			dir = LeftDir
			curr = acc.Left(curr)
		} else {
			dir = RightDir
			curr = acc.Right(curr)
		}
	}
	return SearchResult[H]{Found: nilH, Hint: parent, Dir: dir}
}

// Minimum walks all-left from node and returns the leftmost descendant.
// Precondition: node is non-nil.
func Minimum[H comparable, K any](acc Accessor[H, K], node H) H {
	for !acc.IsNil(acc.Left(node)) {
		node = acc.Left(node)
	}
	return node
}

// Maximum walks all-right from node and returns the rightmost descendant.
// Precondition: node is non-nil.
func Maximum[H comparable, K any](acc Accessor[H, K], node H) H {
	for !acc.IsNil(acc.Right(node)) {
		node = acc.Right(node)
	}
	return node
}

// Successor returns the in-order successor of node, or the nil handle if
// node holds the maximum key in the tree.
func Successor[H comparable, K any](acc Accessor[H, K], node H) H {
	if !acc.IsNil(acc.Right(node)) {
		return Minimum(acc, acc.Right(node))
	}
	p := acc.Parent(node)
	for !acc.IsNil(p) && acc.Equal(node, acc.Right(p)) {
		node = p
		p = acc.Parent(p)
	}
	return p
}

// Predecessor returns the in-order predecessor of node, or the nil handle
// if node holds the minimum key in the tree.
func Predecessor[H comparable, K any](acc Accessor[H, K], node H) H {
	if !acc.IsNil(acc.Left(node)) {
		return Maximum(acc, acc.Left(node))
	}
	p := acc.Parent(node)
	for !acc.IsNil(p) && acc.Equal(node, acc.Left(p)) {
		node = p
		p = acc.Parent(p)
	}
	return p
}

// InsertResult reports the outcome of Insert.
type InsertResult[H comparable] struct {
	NewRoot  H
	Inserted H // nil handle if the key already existed
	Existing H // nil handle if a new node was built
}

// Insert searches for key; if found, it returns the existing handle without
// building anything. If absent, it builds a new node at the hinted position
// (or as the root, if the tree was empty) and links its parent pointer.
func Insert[H comparable, K any](acc Accessor[H, K], root H, key K, cmp Comparator[K]) InsertResult[H] {
	nilH := acc.NilHandle()
	res := Search(acc, root, key, cmp)
	if !acc.IsNil(res.Found) {
		return InsertResult[H]{NewRoot: root, Inserted: nilH, Existing: res.Found}
	}

	n := acc.Build(key)
	acc.SetParent(n, res.Hint)
	acc.SetLeft(n, nilH)
	acc.SetRight(n, nilH)
	acc.SetHeight(n, 1)

	if acc.IsNil(res.Hint) {
		return InsertResult[H]{NewRoot: n, Inserted: n, Existing: nilH}
	}
	if res.Dir == LeftDir {
		acc.SetLeft(res.Hint, n)
	} else {
		acc.SetRight(res.Hint, n)
	}
	return InsertResult[H]{NewRoot: root, Inserted: n, Existing: nilH}
}

// shift replaces the subtree rooted at u with the subtree rooted at v in
// u's parent slot, updating v's parent back-pointer (if v is non-nil) and
// returning the possibly-updated tree root.
func shift[H comparable, K any](acc Accessor[H, K], root, u, v H) H {
	p := acc.Parent(u)
	if acc.IsNil(p) {
		root = v
	} else if acc.Equal(u, acc.Left(p)) {
		acc.SetLeft(p, v)
	} else {
		acc.SetRight(p, v)
	}
	if !acc.IsNil(v) {
		acc.SetParent(v, p)
	}
	return root
}

// DeleteResult reports the outcome of Delete: the tree's possibly-updated
// root, and the rebalance anchor used by the AVL/RB delete wrappers (plain
// BST delete ignores the anchor).
type DeleteResult[H comparable] struct {
	NewRoot H
	// Anchor is the node from which AVL/RB delete should resume
	// rebalancing/fixup. It may be the nil handle (e.g. the tree became
	// empty).
	Anchor H
	// Removed is the spliced-out node. For the two-children case this is
	// still the original node n, not the successor: the successor node
	// itself is relinked into n's position, and no key is copied.
	Removed H
}

// Delete removes node n from the tree using the three BST deletion cases
// (no left child, no right child, two children), returning the new root
// and a rebalance anchor for layered balancing algorithms.
func Delete[H comparable, K any](acc Accessor[H, K], root, n H) DeleteResult[H] {
	if acc.IsNil(acc.Left(n)) {
		anchor := acc.Parent(n)
		root = shift(acc, root, n, acc.Right(n))
		return DeleteResult[H]{NewRoot: root, Anchor: anchor, Removed: n}
	}
	if acc.IsNil(acc.Right(n)) {
		anchor := acc.Parent(n)
		root = shift(acc, root, n, acc.Left(n))
		return DeleteResult[H]{NewRoot: root, Anchor: anchor, Removed: n}
	}

	y := Minimum(acc, acc.Right(n))
	var anchor H
	if !acc.Equal(acc.Parent(y), n) {
		anchor = acc.Parent(y)
		root = shift(acc, root, y, acc.Right(y))
		acc.SetRight(y, acc.Right(n))
		acc.SetParent(acc.Right(y), y)
	} else {
		anchor = y
	}
	root = shift(acc, root, n, y)
	acc.SetLeft(y, acc.Left(n))
	acc.SetParent(acc.Left(y), y)

	return DeleteResult[H]{NewRoot: root, Anchor: anchor, Removed: n}
}

// RotateLeft performs a left rotation at r, promoting r's right child.
// Precondition: r.right is non-nil. Returns the possibly-updated tree
// root.
func RotateLeft[H comparable, K any](acc Accessor[H, K], root, r H) H {
	if acc.IsNil(acc.Right(r)) {
		panic("treecore: RotateLeft requires a non-nil right child")
	}
	pivot := acc.Right(r)
	acc.SetRight(r, acc.Left(pivot))
	if !acc.IsNil(acc.Left(pivot)) {
		acc.SetParent(acc.Left(pivot), r)
	}

	p := acc.Parent(r)
	acc.SetParent(pivot, p)
	if acc.IsNil(p) {
		root = pivot
	} else if acc.Equal(r, acc.Left(p)) {
		acc.SetLeft(p, pivot)
	} else {
		acc.SetRight(p, pivot)
	}

	acc.SetLeft(pivot, r)
	acc.SetParent(r, pivot)
	return root
}

// RotateRight performs a right rotation at r, promoting r's left child.
// Precondition: r.left is non-nil. Returns the possibly-updated tree root.
func RotateRight[H comparable, K any](acc Accessor[H, K], root, r H) H {
	if acc.IsNil(acc.Left(r)) {
		panic("treecore: RotateRight requires a non-nil left child")
	}
	pivot := acc.Left(r)
	acc.SetLeft(r, acc.Right(pivot))
	if !acc.IsNil(acc.Right(pivot)) {
		acc.SetParent(acc.Right(pivot), r)
	}

	p := acc.Parent(r)
	acc.SetParent(pivot, p)
	if acc.IsNil(p) {
		root = pivot
	} else if acc.Equal(r, acc.Left(p)) {
		acc.SetLeft(p, pivot)
	} else {
		acc.SetRight(p, pivot)
	}

	acc.SetRight(pivot, r)
	acc.SetParent(r, pivot)
	return root
}

// TraverseInOrder visits every node reachable from n in ascending key
// order, calling f on each. It stops early (and returns false) the moment f
// returns false.
func TraverseInOrder[H comparable, K any](acc Accessor[H, K], n H, f func(H) bool) bool {
	if acc.IsNil(n) {
		return true
	}
	if !TraverseInOrder(acc, acc.Left(n), f) {
		return false
	}
	if !f(n) {
		return false
	}
	return TraverseInOrder(acc, acc.Right(n), f)
}
