package bnet

import (
	"github.com/katalvlaran/bnattract/symbolic"
	"github.com/katalvlaran/bnattract/symbolic/explicit"
)

// ToSymbolicGraph compiles the network into a symbolic.SymbolicGraph
// backed by symbolic/explicit, one UpdateFunc closure per variable.
func (n *Network) ToSymbolicGraph() (*explicit.Graph, error) {
	updates := make([]explicit.UpdateFunc, len(n.updates))
	for i, e := range n.updates {
		e := e
		updates[i] = func(state, colour uint64) bool { return evalExpr(e, state, colour) }
	}

	return explicit.NewGraph(updates, n.NumParameters())
}

func evalExpr(e *expr, state, colour uint64) bool {
	switch e.kind {
	case exprLiteral:
		return e.value
	case exprVar:
		return (state>>uint(e.varIndex))&1 != 0
	case exprParam:
		return (colour>>uint(e.paramIndex))&1 != 0
	case exprNot:
		return !evalExpr(e.left, state, colour)
	case exprAnd:
		return evalExpr(e.left, state, colour) && evalExpr(e.right, state, colour)
	case exprOr:
		return evalExpr(e.left, state, colour) || evalExpr(e.right, state, colour)
	default:
		panic(symbolic.InvariantViolation{Where: "bnet: unknown expression kind"})
	}
}
