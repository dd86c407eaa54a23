package bnet

// exprKind tags the variant of an update-function expression node.
type exprKind int

const (
	exprLiteral exprKind = iota
	exprVar
	exprParam
	exprNot
	exprAnd
	exprOr
)

// expr is one node of a parsed update-function expression tree. Not
// uses only left; And/Or use both; Var/Param carry a resolved index
// instead of a name; Literal carries value directly.
type expr struct {
	kind       exprKind
	value      bool
	varIndex   int
	paramIndex int
	left       *expr
	right      *expr
}

// Network is a parsed Boolean network: one update expression per
// declared variable, plus whatever uninterpreted parameters its
// expressions referenced.
type Network struct {
	variableNames []string
	variableIndex map[string]int
	paramNames    []string
	paramIndex    map[string]int
	updates       []*expr
}

// VariableNames returns the declared variables in declaration order,
// which is also their bit index in every compiled state.
func (n *Network) VariableNames() []string {
	return append([]string(nil), n.variableNames...)
}

// ParameterNames returns the uninterpreted parameters referenced by
// any update expression, in first-seen order, which is also their bit
// index in every compiled colour.
func (n *Network) ParameterNames() []string {
	return append([]string(nil), n.paramNames...)
}

// NumVariables is the number of declared variables.
func (n *Network) NumVariables() int { return len(n.variableNames) }

// NumParameters is the number of uninterpreted parameters referenced.
func (n *Network) NumParameters() int { return len(n.paramNames) }
