package symbolic

// CVSet is a symbolic coloured-vertex set: a subset of State × Colour,
// represented implicitly (by a BDD, in a production backend) rather than
// enumerated. Every method is pure: it returns a new CVSet and leaves its
// receiver and arguments untouched, so CVSets can be freely shared between
// processes and schedulers without defensive copying.
type CVSet interface {
	// Union, Intersect and Minus form the Boolean algebra every
	// reachability computation is built from.
	Union(other CVSet) CVSet
	Intersect(other CVSet) CVSet
	Minus(other CVSet) CVSet

	IsEmpty() bool
	Equals(other CVSet) bool
	IsSubset(other CVSet) bool

	// PickVertex returns a singleton (one state, all its colours) inside
	// the receiver. Undefined (implementations should panic with
	// InvariantViolation or return an empty set only via the explicit
	// ErrPickOnEmpty error path exposed by the concrete type) when the
	// receiver is empty.
	PickVertex() CVSet

	// ApproxCardinality estimates the number of (state, colour) pairs;
	// it is a diagnostic, not something correctness may depend on.
	ApproxCardinality() float64

	// SymbolicSize is the backing representation's node count, used as a
	// cheap proxy for the cost of stepping a process over this set
	// (scheduler.PriorityScheduler's weight function).
	SymbolicSize() int

	// Colours projects out the states, leaving the colours for which the
	// receiver is non-empty.
	Colours() ColourSet

	// IntersectColours restricts the receiver to the given colours.
	IntersectColours(c ColourSet) CVSet

	// Vertices projects out the colours, leaving the underlying set of
	// states (still represented as a CVSet, now carrying every colour for
	// each of its states).
	Vertices() CVSet
}
