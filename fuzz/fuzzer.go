package fuzz

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/kael-dev/ordset/internal/treecore"
)

// Variant is the public surface the epoch loop drives: a set-under-test,
// plus enough structural access (via the embedded Structural) for
// CheckFunc validators to walk it directly.
type Variant[H comparable, K comparable] interface {
	Structural[H, K]
	Add(key K) bool
	Remove(key K) bool
	Count() int
	String() string
}

// Config configures one fuzz run for a single set variant.
type Config[H comparable, K comparable] struct {
	// MaxElements bounds how large the grow phase lets the tree get
	// before the shrink phase begins.
	MaxElements int
	// Epochs is how many grow/shrink cycles to run.
	Epochs int
	// NewTree constructs a fresh, empty tree-under-test for each epoch.
	NewTree func() Variant[H, K]
	// RandKey draws a random key from [0, n) for whatever notion of "n"
	// fits K; Run calls it with n = 4*MaxElements (or 1 when that is not
	// positive).
	RandKey func(r *rand.Rand, n int) K
	// Validate runs every structural check appropriate to the variant
	// (e.g. Combine(Adjacency, Content) for a plain BST; add AVLBalance
	// or RBRules for the balanced variants).
	Validate CheckFunc[H, K]
}

// Run drives Config.Epochs grow/shrink cycles against a fresh oracle set
// each time: the grow phase adds random keys (in [0, 4*MaxElements)) until
// the tree reaches MaxElements, the shrink phase removes random keys until
// the tree is empty, and every mutation is followed by Config.Validate.
// Add/Remove must agree with the oracle's own add/remove semantics at every
// step, or Run returns a *MismatchError. Any validator failure is returned
// as a *ValidationError. Run prints an epoch counter every 100 epochs for
// visibility during long runs.
func Run[H comparable, K comparable](cfg Config[H, K], r *rand.Rand) error {
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if epoch%100 == 0 {
			fmt.Printf("fuzz: epoch %d\n", epoch)
		}
		if err := runEpoch(cfg, r); err != nil {
			return err
		}
	}
	return nil
}

func runEpoch[H comparable, K comparable](cfg Config[H, K], r *rand.Rand) error {
	runID := uuid.New()
	tree := cfg.NewTree()
	oracle := make(map[K]struct{})

	if err := cfg.Validate(tree, oracle); err != nil {
		return &ValidationError{RunID: runID, Reason: "initial", Operation: "construct", Snapshot: tree.String(), Err: err}
	}

	n := 4 * cfg.MaxElements
	if n <= 0 {
		n = 1
	}

	// Grow phase.
	for tree.Count() < cfg.MaxElements {
		key := cfg.RandKey(r, n)
		snapshot := tree.String()

		_, existed := oracle[key]
		wantAdded := !existed
		gotAdded := tree.Add(key)

		op := fmt.Sprintf("add(%v)", key)
		if gotAdded != wantAdded {
			return &MismatchError{RunID: runID, Operation: op, TreeResult: gotAdded, OracleResult: wantAdded, Snapshot: snapshot}
		}
		if gotAdded {
			oracle[key] = struct{}{}
		}
		if err := cfg.Validate(tree, oracle); err != nil {
			return &ValidationError{RunID: runID, Reason: "post-add", Operation: op, Snapshot: snapshot, Err: err}
		}
	}

	// Shrink phase.
	for tree.Count() > 0 {
		key := cfg.RandKey(r, n)
		snapshot := tree.String()

		_, existed := oracle[key]
		wantRemoved := existed
		gotRemoved := tree.Remove(key)

		op := fmt.Sprintf("remove(%v)", key)
		if gotRemoved != wantRemoved {
			return &MismatchError{RunID: runID, Operation: op, TreeResult: gotRemoved, OracleResult: wantRemoved, Snapshot: snapshot}
		}
		if gotRemoved {
			delete(oracle, key)
		}
		if err := cfg.Validate(tree, oracle); err != nil {
			return &ValidationError{RunID: runID, Reason: "post-remove", Operation: op, Snapshot: snapshot, Err: err}
		}
	}

	return nil
}

// RandIntKey draws a pseudo-random int in [0, n). It is the RandKey
// implementation used by every example and test in this module, all of
// which operate over integer keys.
func RandIntKey(r *rand.Rand, n int) int {
	return r.Intn(n)
}

var _ treecore.Comparator[int] = func(a, b int) int { return a - b }
