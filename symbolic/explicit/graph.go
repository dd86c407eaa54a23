package explicit

import "github.com/katalvlaran/bnattract/symbolic"

// Variables iterates the graph's variables in canonical index order.
func (g *Graph) Variables() []symbolic.Variable {
	out := make([]symbolic.Variable, g.numVars)
	for i := range out {
		out[i] = symbolic.Variable(i)
	}
	return out
}

// enabled reports whether firing v is enabled at (state, colour): the
// update function disagrees with the variable's current value.
func (g *Graph) enabled(v int, state, colour int) bool {
	bit := (state>>uint(v))&1 != 0
	return g.updates[v](uint64(state), uint64(colour)) != bit
}

// VarPost is the image of x under transitions that fire variable v.
func (g *Graph) VarPost(v symbolic.Variable, x symbolic.CVSet) symbolic.CVSet {
	g.checkVariable(v)
	xs := x.(*Set)
	out := newBitSet(g.universeSize())
	xs.bits.forEach(func(i int) {
		state, colour := i/g.numColours, i%g.numColours
		if g.enabled(int(v), state, colour) {
			succ := state ^ (1 << uint(v))
			out.set(g.index(succ, colour))
		}
	})
	return &Set{g: g, bits: out}
}

// VarPre is the preimage of x under transitions firing v.
func (g *Graph) VarPre(v symbolic.Variable, x symbolic.CVSet) symbolic.CVSet {
	g.checkVariable(v)
	xs := x.(*Set)
	out := newBitSet(g.universeSize())
	xs.bits.forEach(func(i int) {
		state, colour := i/g.numColours, i%g.numColours
		pred := state ^ (1 << uint(v))
		if g.enabled(int(v), pred, colour) {
			out.set(g.index(pred, colour))
		}
	})
	return &Set{g: g, bits: out}
}

// Post is the union of VarPost over every variable.
func (g *Graph) Post(x symbolic.CVSet) symbolic.CVSet {
	result := EmptySet(g)
	var acc symbolic.CVSet = result
	for _, v := range g.Variables() {
		acc = acc.Union(g.VarPost(v, x))
	}
	return acc
}

// Pre is the union of VarPre over every variable.
func (g *Graph) Pre(x symbolic.CVSet) symbolic.CVSet {
	var acc symbolic.CVSet = EmptySet(g)
	for _, v := range g.Variables() {
		acc = acc.Union(g.VarPre(v, x))
	}
	return acc
}

// VarCanPost returns the states in x from which at least one v-transition
// is enabled. By construction this equals x ∩ Pre(VarPost(v, x)), but is
// computed directly as the set of (state, colour) pairs in x where v's
// update function is enabled, which is equivalent and far cheaper.
func (g *Graph) VarCanPost(v symbolic.Variable, x symbolic.CVSet) symbolic.CVSet {
	g.checkVariable(v)
	xs := x.(*Set)
	out := newBitSet(g.universeSize())
	xs.bits.forEach(func(i int) {
		state, colour := i/g.numColours, i%g.numColours
		if g.enabled(int(v), state, colour) {
			out.set(i)
		}
	})
	return &Set{g: g, bits: out}
}

// FixVariable is the CVSet of all states with v = b, under every colour.
func (g *Graph) FixVariable(v symbolic.Variable, b bool) symbolic.CVSet {
	g.checkVariable(v)
	out := newBitSet(g.universeSize())
	want := 0
	if b {
		want = 1
	}
	for state := 0; state < g.NumStates(); state++ {
		if (state>>uint(v))&1 == want {
			base := state * g.numColours
			for c := 0; c < g.numColours; c++ {
				out.set(base + c)
			}
		}
	}
	return &Set{g: g, bits: out}
}
