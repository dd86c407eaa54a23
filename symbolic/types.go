// Package symbolic defines the contract the core needs from a BDD-backed
// symbolic transition graph: a Boolean algebra over coloured-vertex sets
// (CVSets), a Boolean algebra over colourings, and the handful of graph
// operations (var_post, var_pre, var_can_post, fix_variable, ...) that
// every reachability computation in reach/, process/, scheduler/,
// reduce/, and attractor/ is built from.
//
// The actual binary-decision-diagram engine behind these interfaces is,
// per this project's scope, an external collaborator: nothing in this
// package constructs one. symbolic/explicit supplies a concrete,
// explicit-state reference implementation used by every test in this
// repository and by the CLI for models small enough to not need a real
// BDD package.
package symbolic

import "errors"

// Variable names one Boolean component of the network by its dense index
// in the fixed total order assumed throughout the package. Saturation
// loops in reach/ and process/ rely on this order for their "highest
// index first" scan.
type Variable uint16

// Sentinel errors shared by every concrete SymbolicGraph / CVSet
// implementation.
var (
	// ErrEmptyUniverse indicates the network's unit universe admits no
	// (state, colour) pairs at all — a malformed-input condition per the
	// error handling design (no colouring satisfies the update functions).
	ErrEmptyUniverse = errors.New("symbolic: unit universe is empty")

	// ErrPickOnEmpty indicates PickVertex (or an equivalent structural
	// pivot pick) was called on an empty CVSet, which is undefined by
	// contract.
	ErrPickOnEmpty = errors.New("symbolic: pick_vertex on empty set")

	// ErrUnknownVariable indicates an operation referenced a Variable
	// outside the graph's declared range.
	ErrUnknownVariable = errors.New("symbolic: unknown variable")
)

// InvariantViolation is panicked (never returned) when a core internal
// invariant is broken — e.g. RandomPivot finishing on a non-singleton
// set, which would indicate a bug in the SymbolicGraph façade or in the
// canonical variable ordering, not a recoverable runtime condition. Per
// the error handling design, this is treated as unrecoverable: recover it
// only at a CLI entry point, log it, and exit non-zero.
type InvariantViolation struct {
	// Where names the invariant that was broken, e.g. "random_pivot:
	// non-singleton result".
	Where string
}

func (e InvariantViolation) Error() string {
	return "symbolic: invariant violation: " + e.Where
}
