package symbolic

// SymbolicGraph is a façade exposing the asynchronous transition relation
// of a parameterised Boolean network. Every method is pure and total:
// empty operands are always allowed, results are deterministic, and
// there is no hidden state beyond the network the graph was built from.
//
// This is the contract the core needs from a BDD library; the only
// design content here is the contract itself (spec §4.6) — a production
// implementation is a thin wrapper around a real BDD package.
type SymbolicGraph interface {
	// UnitUniverse is the full State × Colour set admitted by the
	// network's parameter constraints.
	UnitUniverse() CVSet

	// Variables iterates the network's variables in the canonical,
	// fixed total order every saturation loop relies on.
	Variables() []Variable

	// VarPost is the image of x under transitions that fire variable v.
	VarPost(v Variable, x CVSet) CVSet

	// VarPre is the preimage of x under transitions firing v.
	VarPre(v Variable, x CVSet) CVSet

	// Post is the union of VarPost over every variable.
	Post(x CVSet) CVSet

	// Pre is the union of VarPre over every variable.
	Pre(x CVSet) CVSet

	// VarCanPost returns the states in x from which at least one
	// v-transition is enabled, i.e. x ∩ Pre(VarPost(v, x)).
	VarCanPost(v Variable, x CVSet) CVSet

	// FixVariable is the CVSet of all states with v set to b.
	FixVariable(v Variable, b bool) CVSet
}
