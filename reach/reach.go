package reach

import "github.com/katalvlaran/bnattract/symbolic"

// Fwd returns the least fixed point of
//
//	R0     = initial
//	Rn+1   = Rn ∪ ((⋃v∈variables var_post(v, Rn)) ∩ universe)
//
// using per-variable saturation: the highest-indexed variable that still
// yields new states is applied first, and the scan restarts at the top of
// variables after every successful step. If variables is empty, initial
// is returned unchanged.
func Fwd(graph symbolic.SymbolicGraph, variables []symbolic.Variable, initial, universe symbolic.CVSet) symbolic.CVSet {
	return saturate(variables, initial, universe, graph.VarPost)
}

// Bwd is the symmetric construction over var_pre.
func Bwd(graph symbolic.SymbolicGraph, variables []symbolic.Variable, initial, universe symbolic.CVSet) symbolic.CVSet {
	return saturate(variables, initial, universe, graph.VarPre)
}

// step is one directed symbolic image/preimage operator: var_post or
// var_pre, depending on which kernel is saturating.
type step func(v symbolic.Variable, x symbolic.CVSet) symbolic.CVSet

// saturate implements the per-variable saturation loop shared by Fwd and
// Bwd: pick the highest-indexed variable, apply step if it grows the
// result, and restart at the top; move to the next-lower variable only
// when the current one is exhausted; terminate when the lowest variable
// yields nothing new.
func saturate(variables []symbolic.Variable, initial, universe symbolic.CVSet, step step) symbolic.CVSet {
	if len(variables) == 0 {
		return initial
	}

	result := initial
	lastIndex := len(variables) - 1
	active := lastIndex
	for {
		v := variables[active]
		next := step(v, result).Intersect(universe).Minus(result)
		if next.IsEmpty() {
			if active == 0 {
				return result
			}
			active--
			continue
		}
		result = result.Union(next)
		active = lastIndex
	}
}
