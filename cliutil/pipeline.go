package cliutil

import (
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/bnet"
	"github.com/katalvlaran/bnattract/symbolic"
)

// ReducerFunc is the shape shared by reduce.Priority, reduce.RoundRobin
// and reduce.Sequential.
type ReducerFunc func(graph symbolic.SymbolicGraph, universe symbolic.CVSet) (symbolic.CVSet, []symbolic.Variable)

// FinderFunc is the shape shared by attractor.Find and
// attractor.FindLockstep.
type FinderFunc func(graph symbolic.SymbolicGraph, variables []symbolic.Variable, universe symbolic.CVSet, pivot attractor.PivotFunc) []symbolic.CVSet

// Identity is the no-op ReducerFunc: cmd/attractors-basic runs the
// finder directly against the unreduced universe.
func Identity(graph symbolic.SymbolicGraph, universe symbolic.CVSet) (symbolic.CVSet, []symbolic.Variable) {
	return universe, graph.Variables()
}

// PivotFactory builds a PivotFunc once the graph being searched is
// known, since attractor.NewRandomPivot needs the graph's variable
// order to draw its coin flips.
type PivotFactory func(graph symbolic.SymbolicGraph) attractor.PivotFunc

// StaticPivot wraps a pivot that does not depend on the graph, such as
// attractor.PickVertexPivot, as a PivotFactory.
func StaticPivot(pivot attractor.PivotFunc) PivotFactory {
	return func(symbolic.SymbolicGraph) attractor.PivotFunc { return pivot }
}

// RunPipeline reads a network from r, reduces and searches it per the
// given reducer/finder/pivot, and writes one "Attractor #i: ..." line
// per result to w. It returns the process exit code: 0 on success, 1
// on malformed input or an empty unit universe, logged to logger. An
// InvariantViolation panicking out of the reducer or finder is left
// for the caller to recover; RunPipeline does not catch it.
func RunPipeline(r io.Reader, w io.Writer, logger *log.Logger, reducer ReducerFunc, finder FinderFunc, pivotFactory PivotFactory) int {
	net, err := bnet.Parse(r)
	if err != nil {
		logger.Printf("parse error: %v", err)
		return 1
	}

	graph, err := net.ToSymbolicGraph()
	if err != nil {
		logger.Printf("graph construction error: %v", err)
		return 1
	}

	universe := graph.UnitUniverse()
	if universe.IsEmpty() {
		logger.Printf("error: %v", symbolic.ErrEmptyUniverse)
		return 1
	}

	totalVariables := len(graph.Variables())
	reducedUniverse, variables := reducer(graph, universe)
	components := finder(graph, variables, reducedUniverse, pivotFactory(graph))

	for i, component := range components {
		line := fmt.Sprintf("Attractor #%d: %s", i+1, formatCardinality(component))
		if len(variables) < totalVariables {
			line += fmt.Sprintf(" (using %d nodes)", len(variables))
		}
		fmt.Fprintln(w, line)
	}

	return 0
}

// formatCardinality renders a CVSet's size as an integer when it is a
// whole number (ApproxCardinality is a diagnostic estimate in general,
// but symbolic/explicit reports exact counts), falling back to the raw
// float otherwise.
func formatCardinality(set symbolic.CVSet) string {
	n := set.ApproxCardinality()
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
