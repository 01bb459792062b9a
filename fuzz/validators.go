package fuzz

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/kael-dev/ordset/internal/treecore"
)

// Structural is the minimal surface a set implementation must expose for
// the validators in this file to walk its tree directly, independent of
// which of the two node representations (internal/linkednode,
// internal/arraynode) backs it.
type Structural[H comparable, K any] interface {
	Accessor() treecore.Accessor[H, K]
	Root() H
}

// CheckFunc is a single structural invariant check. Checks that don't need
// the oracle (everything but Content) ignore it.
type CheckFunc[H comparable, K comparable] func(s Structural[H, K], oracle map[K]struct{}) error

// Combine runs every check in order, stopping at (and returning) the first
// failure.
func Combine[H comparable, K comparable](checks ...CheckFunc[H, K]) CheckFunc[H, K] {
	return func(s Structural[H, K], oracle map[K]struct{}) error {
		for _, c := range checks {
			if err := c(s, oracle); err != nil {
				return err
			}
		}
		return nil
	}
}

// Adjacency walks the tree ensuring parent(left(n)) == n and
// parent(right(n)) == n at every non-nil node, and that the root's parent
// is nil.
func Adjacency[H comparable, K comparable](s Structural[H, K], _ map[K]struct{}) error {
	acc := s.Accessor()
	root := s.Root()
	if acc.IsNil(root) {
		return nil
	}
	if !acc.IsNil(acc.Parent(root)) {
		return fmt.Errorf("adjacency: root has non-nil parent")
	}

	var err error
	treecore.TraverseInOrder(acc, root, func(n H) bool {
		if left := acc.Left(n); !acc.IsNil(left) && !acc.Equal(acc.Parent(left), n) {
			err = fmt.Errorf("adjacency: node %v's left child does not point back to it", acc.Key(n))
			return false
		}
		if right := acc.Right(n); !acc.IsNil(right) && !acc.Equal(acc.Parent(right), n) {
			err = fmt.Errorf("adjacency: node %v's right child does not point back to it", acc.Key(n))
			return false
		}
		return true
	})
	return err
}

// Content compares the set of keys reachable from the tree's root against
// the oracle set, reporting any excess (present in the tree but not the
// oracle) or missing (present in the oracle but not the tree) keys.
func Content[H comparable, K comparable](s Structural[H, K], oracle map[K]struct{}) error {
	acc := s.Accessor()
	treeKeys := treecore.Keys(acc, s.Root())

	seen := make(map[K]struct{}, len(treeKeys))
	for _, k := range treeKeys {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("content: duplicate key %v in tree (uniqueness invariant violated)", k)
		}
		seen[k] = struct{}{}
	}

	excess, missing := lo.Difference(lo.Keys(seen), lo.Keys(oracle))
	if len(excess) > 0 || len(missing) > 0 {
		return fmt.Errorf("content: excess=%v missing=%v", excess, missing)
	}
	return nil
}

// AVLBalance recomputes each node's height bottom-up, comparing the
// recomputed value against the stored one, and checks |balance factor| <=
// 1 at every node.
func AVLBalance[H comparable, K comparable](s Structural[H, K], _ map[K]struct{}) error {
	acc := s.Accessor()
	var err error

	var walk func(n H) int
	walk = func(n H) int {
		if acc.IsNil(n) || err != nil {
			return 0
		}
		lh := walk(acc.Left(n))
		rh := walk(acc.Right(n))
		h := lh
		if rh > h {
			h = rh
		}
		h++

		if err == nil && h != acc.Height(n) {
			err = fmt.Errorf("height: node %v stored height %d, recomputed %d", acc.Key(n), acc.Height(n), h)
			return h
		}
		bf := lh - rh
		if err == nil && (bf > 1 || bf < -1) {
			err = fmt.Errorf("balance: node %v has balance factor %d", acc.Key(n), bf)
		}
		return h
	}
	walk(s.Root())
	return err
}

// RBRules verifies the Red-Black color invariants: the root is black, no
// red node has a red child, and every root-to-nil path carries the same
// count of black nodes (nil counts as black).
func RBRules[H comparable, K comparable](s Structural[H, K], _ map[K]struct{}) error {
	acc := s.Accessor()
	root := s.Root()

	isBlack := func(n H) bool { return acc.IsNil(n) || acc.Color(n) == treecore.Black }

	if !isBlack(root) {
		return fmt.Errorf("color: root is not black")
	}

	var err error
	var blackHeight func(n H) int
	blackHeight = func(n H) int {
		if acc.IsNil(n) {
			return 1
		}
		if err != nil {
			return 0
		}
		if !isBlack(n) && (!isBlack(acc.Left(n)) || !isBlack(acc.Right(n))) {
			err = fmt.Errorf("color: red node %v has a red child", acc.Key(n))
			return 0
		}
		lh := blackHeight(acc.Left(n))
		rh := blackHeight(acc.Right(n))
		if err != nil {
			return 0
		}
		if lh != rh {
			err = fmt.Errorf("color: node %v has mismatched black-height (left=%d, right=%d)", acc.Key(n), lh, rh)
			return 0
		}
		if isBlack(n) {
			return lh + 1
		}
		return lh
	}
	blackHeight(root)
	return err
}
