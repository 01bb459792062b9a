package linkednode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
)

func TestAccessor_NilHandle(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	assert.True(t, acc.IsNil(acc.NilHandle()))
	assert.True(t, acc.IsNil(nil))
}

func TestAccessor_BuildDefaults(t *testing.T) {
	acc := linkednode.NewAccessor[string]()
	n := acc.Build("hello")

	assert.Equal(t, "hello", acc.Key(n))
	assert.Equal(t, 1, acc.Height(n))
	assert.Equal(t, treecore.Red, acc.Color(n))
	assert.True(t, acc.IsNil(acc.Left(n)))
	assert.True(t, acc.IsNil(acc.Right(n)))
	assert.True(t, acc.IsNil(acc.Parent(n)))
}

func TestAccessor_NilReadsAsBlackAndZeroHeight(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	nilH := acc.NilHandle()
	assert.Equal(t, treecore.Black, acc.Color(nilH))
	assert.Equal(t, 0, acc.Height(nilH))

	// must not panic even though there is no backing node.
	acc.SetColor(nilH, treecore.Red)
	assert.Equal(t, treecore.Black, acc.Color(nilH))
}

func TestAccessor_SettersAndLinks(t *testing.T) {
	acc := linkednode.NewAccessor[int]()
	parent := acc.Build(10)
	left := acc.Build(5)
	right := acc.Build(15)

	acc.SetLeft(parent, left)
	acc.SetRight(parent, right)
	acc.SetParent(left, parent)
	acc.SetParent(right, parent)

	assert.True(t, acc.Equal(acc.Left(parent), left))
	assert.True(t, acc.Equal(acc.Right(parent), right))
	assert.True(t, acc.Equal(acc.Parent(left), parent))
	assert.True(t, acc.Equal(acc.Parent(right), parent))

	acc.SetHeight(parent, 2)
	assert.Equal(t, 2, acc.Height(parent))

	acc.SetColor(left, treecore.Black)
	assert.Equal(t, treecore.Black, acc.Color(left))
}
