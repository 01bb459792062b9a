package bstset

import "testing"

// FuzzAdd exercises Add with single fuzzed integers against a tree that
// accumulates across calls, in the corpus-fuzzing idiom (rather than the
// package fuzz epoch-based oracle loop): every Add must leave the key
// Contains-able and must never panic.
func FuzzAdd(f *testing.F) {
	for _, seed := range []int{0, 1, -1, 100, -100} {
		f.Add(seed)
	}

	s := New[int](func(a, b int) int { return a - b })
	f.Fuzz(func(t *testing.T, key int) {
		s.Add(key)
		if !s.Contains(key) {
			t.Fatalf("Add(%d) then Contains(%d) = false", key, key)
		}
	})
}

// FuzzAddRemove fuzzes a single (key, remove) pair at a time against a
// shared tree, asserting Remove's return value always matches whether the
// key was actually present beforehand.
func FuzzAddRemove(f *testing.F) {
	f.Add(5, false)
	f.Add(5, true)
	f.Add(0, true)

	s := New[int](func(a, b int) int { return a - b })
	f.Fuzz(func(t *testing.T, key int, remove bool) {
		if remove {
			wasPresent := s.Contains(key)
			if s.Remove(key) != wasPresent {
				t.Fatalf("Remove(%d) result disagreed with prior Contains", key)
			}
			return
		}
		wasPresent := s.Contains(key)
		if s.Add(key) == wasPresent {
			t.Fatalf("Add(%d) result disagreed with prior Contains", key)
		}
	})
}
