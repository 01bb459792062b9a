package rbset_test

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/kael-dev/ordset/rbset"
)

func BenchmarkSet_Insert(b *testing.B) {
	s := rbset.New[int](intCmp)
	i := 0
	for b.Loop() {
		s.Add(i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_Insert(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkSet_SearchRemove(b *testing.B) {
	s := rbset.New[int](intCmp)
	for i := 0; i <= 1_000_000; i++ {
		s.Add(i)
	}
	i := 0
	for b.Loop() {
		s.Contains(i)
		s.Remove(i)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_SearchRemove(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for i := 0; i <= 1_000_000; i++ {
		tree.Put(i, struct{}{})
	}
	i := 0
	for b.Loop() {
		tree.Get(i)
		tree.Remove(i)
		i++
	}
}
