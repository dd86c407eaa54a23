package explicit

import "github.com/katalvlaran/bnattract/symbolic"

// UpdateFunc evaluates one variable's update function at a given state and
// colour (parameter valuation). state and colour are bitmasks: bit i of
// state is the current value of Variable(i); bit j of colour is the
// current value of the j-th uninterpreted parameter. Variable v's
// asynchronous transition fires exactly when UpdateFunc(state, colour)
// disagrees with bit v of state.
type UpdateFunc func(state, colour uint64) bool

// Graph is a small, explicit-state SymbolicGraph backed by UpdateFunc
// closures, one per variable. It supports at most 64 variables and 64
// parameters (colour bits), which comfortably covers every network this
// reference backend is meant to run.
type Graph struct {
	numVars    int
	numColours int // 2^numParams
	updates    []UpdateFunc
}

// NewGraph builds a Graph from one UpdateFunc per variable (in canonical
// order) and the number of uninterpreted Boolean parameters the update
// functions may reference via their colour argument.
func NewGraph(updates []UpdateFunc, numParams int) (*Graph, error) {
	if len(updates) == 0 {
		return nil, symbolic.ErrEmptyUniverse
	}
	if len(updates) > 64 || numParams > 64 {
		return nil, symbolic.ErrUnknownVariable
	}
	return &Graph{
		numVars:    len(updates),
		numColours: 1 << uint(numParams),
		updates:    updates,
	}, nil
}

// NumVars reports the number of network variables.
func (g *Graph) NumVars() int { return g.numVars }

// NumStates reports the size of the explicit state space, 2^NumVars.
func (g *Graph) NumStates() int { return 1 << uint(g.numVars) }

// NumColours reports the size of the explicit colour space, 2^numParams.
func (g *Graph) NumColours() int { return g.numColours }

// index flattens a (state, colour) pair into a bit offset.
func (g *Graph) index(state, colour int) int {
	return state*g.numColours + colour
}

func (g *Graph) universeSize() int {
	return g.NumStates() * g.numColours
}

func (g *Graph) checkVariable(v symbolic.Variable) {
	if int(v) < 0 || int(v) >= g.numVars {
		panic(symbolic.InvariantViolation{Where: "explicit: variable out of range"})
	}
}
