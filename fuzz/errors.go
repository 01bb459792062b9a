// Package fuzz implements the differential fuzzer and structural
// validators (C6) that certify the balanced-tree algorithm kernel: it
// drives a set-under-test against a reference oracle set across
// grow/shrink epochs, re-validating structural invariants after every
// mutation.
package fuzz

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError is returned by Run when a validator reports a violated
// structural invariant (adjacency, content, height, balance, or color); the
// validator's own error is kept in Err. It carries the pre-operation
// snapshot and the operation that triggered the failing validation, tagged
// with a random identifier generated afresh for each fuzz epoch.
type ValidationError struct {
	RunID     uuid.UUID
	Reason    string
	Operation string
	Snapshot  string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(
		"fuzz: validation failure (reason=%s, run=%s) after %s: %v\nsnapshot:\n%s",
		e.Reason, e.RunID, e.Operation, e.Err, e.Snapshot,
	)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// MismatchError is raised when Add or Remove returns a different boolean on
// the tree-under-test than on the oracle set.
type MismatchError struct {
	RunID        uuid.UUID
	Operation    string
	TreeResult   bool
	OracleResult bool
	Snapshot     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"fuzz: result mismatch (run=%s) on %s: tree=%t oracle=%t\nsnapshot:\n%s",
		e.RunID, e.Operation, e.TreeResult, e.OracleResult, e.Snapshot,
	)
}
