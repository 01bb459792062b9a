package rbset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kael-dev/ordset/internal/treecore"
	"github.com/kael-dev/ordset/rbset"
)

func intCmp(a, b int) int { return a - b }

func TestSet_AddContainsRemove(t *testing.T) {
	s := rbset.New[int](intCmp)

	assert.True(t, s.Add(7))
	assert.False(t, s.Add(7))
	assert.True(t, s.Contains(7))
	assert.True(t, s.Remove(7))
	assert.False(t, s.Remove(7))
	assert.False(t, s.Contains(7))
}

// TestSet_InsertTwoOneFour checks that inserting 2, 1, 4 yields a black
// root (2) with both children (1 and 4) red: a black parent can absorb two
// red children without any fixup rotation.
func TestSet_InsertTwoOneFour(t *testing.T) {
	s := rbset.New[int](intCmp)
	s.Add(2)
	s.Add(1)
	s.Add(4)

	c2, ok := s.Color(2)
	require.True(t, ok)
	assert.Equal(t, treecore.Black, c2)

	c1, ok := s.Color(1)
	require.True(t, ok)
	assert.Equal(t, treecore.Red, c1)

	c4, ok := s.Color(4)
	require.True(t, ok)
	assert.Equal(t, treecore.Red, c4)

	assert.Equal(t, []int{1, 2, 4}, s.Keys())
}

// TestSet_InsertFiveIntoTwoOneFour checks that inserting 5 into
// {2, left: 1, right: 4} repaints 1 and 4 black and attaches 5 red under 4,
// with the root (2) restored to black per the invariant that the root is
// always black.
func TestSet_InsertFiveIntoTwoOneFour(t *testing.T) {
	s := rbset.New[int](intCmp)
	s.Add(2)
	s.Add(1)
	s.Add(4)
	s.Add(5)

	c2, _ := s.Color(2)
	assert.Equal(t, treecore.Black, c2, "root must always be black")

	c1, _ := s.Color(1)
	assert.Equal(t, treecore.Black, c1)

	c4, _ := s.Color(4)
	assert.Equal(t, treecore.Black, c4)

	c5, ok := s.Color(5)
	require.True(t, ok)
	assert.Equal(t, treecore.Red, c5)

	assert.Equal(t, []int{1, 2, 4, 5}, s.Keys())
}

func TestSet_RemoveMaintainsKeys(t *testing.T) {
	s := rbset.New[int](intCmp)
	keys := []int{10, 5, 20, 1, 7, 15, 25, 3, 8, 30}
	for _, k := range keys {
		s.Add(k)
	}

	for _, k := range []int{1, 10, 25} {
		require.True(t, s.Remove(k))
	}

	assert.Equal(t, []int{3, 5, 7, 8, 15, 20, 30}, s.Keys())
}

func TestSet_Clear(t *testing.T) {
	s := rbset.New[int](intCmp)
	for i := 0; i < 15; i++ {
		s.Add(i)
	}
	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Keys())
}

func TestArrayBacked_MatchesLinked(t *testing.T) {
	keys := []int{2, 1, 4, 5, 9, 3, 6, 8, 7, 0}

	linked := rbset.New[int](intCmp)
	arr := rbset.NewArrayBacked[int](intCmp)
	for _, k := range keys {
		linked.Add(k)
		arr.Add(k)
	}
	assert.Equal(t, linked.Keys(), arr.Keys())
}
