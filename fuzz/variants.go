package fuzz

import (
	"math"
	"math/rand"
	"time"

	"github.com/kael-dev/ordset/avlset"
	"github.com/kael-dev/ordset/bstset"
	"github.com/kael-dev/ordset/internal/linkednode"
	"github.com/kael-dev/ordset/internal/treecore"
	"github.com/kael-dev/ordset/rbset"
)

func intCmp(a, b int) int { return a - b }

// FuzzBST runs the epoch-based differential fuzzer against a linked-node
// bstset.Set[int], validating adjacency and content after every mutation.
// It runs until a validation or mismatch failure occurs (returned), or
// effectively forever otherwise: it is meant to run until interrupted,
// modeled here as a very large epoch bound.
func FuzzBST(maxElements int) error {
	cfg := Config[*linkednode.Node[int], int]{
		MaxElements: maxElements,
		Epochs:      math.MaxInt32,
		NewTree: func() Variant[*linkednode.Node[int], int] {
			return bstset.New[int](intCmp)
		},
		RandKey:  RandIntKey,
		Validate: Combine[*linkednode.Node[int], int](Adjacency[*linkednode.Node[int], int], Content[*linkednode.Node[int], int]),
	}
	return Run(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// FuzzAVL is FuzzBST's AVL-tree counterpart: it additionally validates the
// height/balance-factor invariant after every mutation.
func FuzzAVL(maxElements int) error {
	cfg := Config[*linkednode.Node[int], int]{
		MaxElements: maxElements,
		Epochs:      math.MaxInt32,
		NewTree: func() Variant[*linkednode.Node[int], int] {
			return avlset.New[int](intCmp)
		},
		RandKey: RandIntKey,
		Validate: Combine[*linkednode.Node[int], int](
			Adjacency[*linkednode.Node[int], int],
			Content[*linkednode.Node[int], int],
			AVLBalance[*linkednode.Node[int], int],
		),
	}
	return Run(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// FuzzRB is FuzzBST's Red-Black-tree counterpart: it additionally validates
// the Red-Black color rules after every mutation.
func FuzzRB(maxElements int) error {
	cfg := Config[*linkednode.Node[int], int]{
		MaxElements: maxElements,
		Epochs:      math.MaxInt32,
		NewTree: func() Variant[*linkednode.Node[int], int] {
			return rbset.New[int](intCmp)
		},
		RandKey: RandIntKey,
		Validate: Combine[*linkednode.Node[int], int](
			Adjacency[*linkednode.Node[int], int],
			Content[*linkednode.Node[int], int],
			RBRules[*linkednode.Node[int], int],
		),
	}
	return Run(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

var _ treecore.Comparator[int] = intCmp
