package attractor

import (
	"math/rand"

	"github.com/katalvlaran/bnattract/symbolic"
)

// PivotFunc selects one representative coloured vertex from a
// non-empty candidate set.
type PivotFunc func(candidates symbolic.CVSet) symbolic.CVSet

// PickVertexPivot is the deterministic strategy: the façade's own
// notion of "first satisfying assignment".
func PickVertexPivot(candidates symbolic.CVSet) symbolic.CVSet {
	return candidates.PickVertex()
}

// NewRandomPivot returns a PivotFunc that walks graph's variables in
// canonical order, flipping a seeded coin per variable to narrow
// candidates down to a single state. The same rng produces the same
// sequence of pivots across a run, so results are reproducible for a
// fixed seed.
func NewRandomPivot(graph symbolic.SymbolicGraph, rng *rand.Rand) PivotFunc {
	return func(candidates symbolic.CVSet) symbolic.CVSet {
		return RandomPivot(graph, candidates, rng)
	}
}

// RandomPivot narrows candidates to a single state by, for each
// variable in canonical order, drawing a fair coin b and preferring
// candidates ∩ fix_variable(v, b), falling back to candidates ∩
// fix_variable(v, ¬b) when that side is empty. After every variable,
// the result is forced down to one state, carrying every colour under
// which that state is in candidates. It panics with
// symbolic.InvariantViolation if the result is not structurally a
// singleton, verified as pivot.Equals(pivot.PickVertex()) rather than an
// approximate-cardinality comparison.
func RandomPivot(graph symbolic.SymbolicGraph, candidates symbolic.CVSet, rng *rand.Rand) symbolic.CVSet {
	pivot := candidates
	for _, v := range graph.Variables() {
		b := rng.Intn(2) == 1
		if narrowed := pivot.Intersect(graph.FixVariable(v, b)); !narrowed.IsEmpty() {
			pivot = narrowed
		} else {
			pivot = pivot.Intersect(graph.FixVariable(v, !b))
		}
	}

	if !pivot.Equals(pivot.PickVertex()) {
		panic(symbolic.InvariantViolation{Where: "attractor.RandomPivot: result is not a singleton state"})
	}

	return pivot
}
