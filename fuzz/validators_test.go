package fuzz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kael-dev/ordset/avlset"
	"github.com/kael-dev/ordset/bstset"
	"github.com/kael-dev/ordset/fuzz"
	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
	"github.com/kael-dev/ordset/rbset"
)

func intCmp(a, b int) int { return a - b }

// rawTree is a minimal fuzz.Structural implementation built directly on
// internal/linkednode, bypassing bstset/avlset/rbset, so tests can hand-
// construct trees that deliberately violate one invariant at a time.
type rawTree struct {
	acc  linkednode.Accessor[int]
	root *linkednode.Node[int]
}

func (r rawTree) Accessor() treecore.Accessor[*linkednode.Node[int], int] { return r.acc }
func (r rawTree) Root() *linkednode.Node[int]                            { return r.root }

func TestAdjacency_ValidTree(t *testing.T) {
	s := bstset.New[int](intCmp)
	for _, k := range []int{5, 3, 8, 1} {
		s.Add(k)
	}
	assert.NoError(t, fuzz.Adjacency[*linkednode.Node[int], int](s, nil))
}

func TestAdjacency_DetectsBrokenBackPointer(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	root := acc.Build(5)
	left := acc.Build(3)
	acc.SetLeft(root, left)
	// Deliberately leave left's parent pointer nil instead of pointing
	// back at root.

	tree := rawTree{acc: acc, root: root}
	err := fuzz.Adjacency[*linkednode.Node[int], int](tree, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjacency")
}

func TestContent_ValidMatchesOracle(t *testing.T) {
	s := bstset.New[int](intCmp)
	oracle := make(map[int]struct{})
	for _, k := range []int{5, 3, 8, 1} {
		s.Add(k)
		oracle[k] = struct{}{}
	}
	assert.NoError(t, fuzz.Content[*linkednode.Node[int], int](s, oracle))
}

func TestContent_DetectsExcessAndMissing(t *testing.T) {
	s := bstset.New[int](intCmp)
	s.Add(5)
	s.Add(3)
	oracle := map[int]struct{}{5: {}, 9: {}}

	err := fuzz.Content[*linkednode.Node[int], int](s, oracle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestAVLBalance_ValidTree(t *testing.T) {
	s := avlset.New[int](intCmp)
	for i := 0; i < 50; i++ {
		s.Add(i)
	}
	assert.NoError(t, fuzz.AVLBalance[*linkednode.Node[int], int](s, nil))
}

func TestAVLBalance_DetectsStaleHeight(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	root := acc.Build(5)
	acc.SetHeight(root, 3) // wrong: a childless leaf's height must be 1.

	tree := rawTree{acc: acc, root: root}
	err := fuzz.AVLBalance[*linkednode.Node[int], int](tree, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}

func TestRBRules_ValidTree(t *testing.T) {
	s := rbset.New[int](intCmp)
	for i := 0; i < 50; i++ {
		s.Add(i)
	}
	assert.NoError(t, fuzz.RBRules[*linkednode.Node[int], int](s, nil))
}

func TestRBRules_DetectsRedRoot(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	root := acc.Build(5) // Build colors nodes Red by default.

	tree := rawTree{acc: acc, root: root}
	err := fuzz.RBRules[*linkednode.Node[int], int](tree, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root is not black")
}

func TestRBRules_DetectsRedRedViolation(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	root := acc.Build(5)
	acc.SetColor(root, treecore.Black)
	child := acc.Build(3)
	acc.SetLeft(root, child)
	acc.SetParent(child, root)
	// child is Red by default: red child of a black root is fine on its
	// own, so give it a red child of its own to trigger the violation.
	grandchild := acc.Build(1)
	acc.SetLeft(child, grandchild)
	acc.SetParent(grandchild, child)

	tree := rawTree{acc: acc, root: root}
	err := fuzz.RBRules[*linkednode.Node[int], int](tree, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "red child")
}

func TestCombine_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	failing := func(fuzz.Structural[*linkednode.Node[int], int], map[int]struct{}) error {
		calls++
		return assertErr
	}
	neverCalled := func(fuzz.Structural[*linkednode.Node[int], int], map[int]struct{}) error {
		calls++
		return nil
	}

	combined := fuzz.Combine[*linkednode.Node[int], int](failing, neverCalled)
	s := bstset.New[int](intCmp)
	err := combined(s, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

var assertErr = assertError("boom")

type assertError string

func (e assertError) Error() string { return string(e) }
