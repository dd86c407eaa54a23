package attractor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/symbolic/explicit"
)

// ScenarioSuite runs the end-to-end networks and algebraic laws in
// terms of find_attractors and its lock-step counterpart.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func mustGraph(t require.TestingT, updates []explicit.UpdateFunc) *explicit.Graph {
	g, err := explicit.NewGraph(updates, 0)
	require.NoError(t, err)
	return g
}

// S1: single node v1 := v1. Two isolated fixed points.
func (s *ScenarioSuite) TestS1_SingleSelfLoop() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&1 != 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().Len(got, 2)
	for _, a := range got {
		s.Require().Equal(1.0, a.ApproxCardinality())
	}
}

// S2: single node v1 := !v1. One 2-cycle attractor.
func (s *ScenarioSuite) TestS2_SelfNegation() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&1 == 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().Len(got, 1)
	s.Require().Equal(2.0, got[0].ApproxCardinality())
}

// S3: two independent self-loops. Four isolated fixed points.
func (s *ScenarioSuite) TestS3_TwoIndependentSelfLoops() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&1 != 0 },
		func(state, _ uint64) bool { return state&2 != 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().Len(got, 4)
	for _, a := range got {
		s.Require().Equal(1.0, a.ApproxCardinality())
	}
}

// S4: mutual inhibition. Two fixed points, {10} and {01}.
func (s *ScenarioSuite) TestS4_MutualInhibition() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&2 == 0 },
		func(state, _ uint64) bool { return state&1 == 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().Len(got, 2)
	for _, a := range got {
		s.Require().Equal(1.0, a.ApproxCardinality())
	}
}

// S5: constant input v1 := v1 feeding v2 := v1. Two fixed points, {00}
// and {11}; {01} and {10} are transient.
func (s *ScenarioSuite) TestS5_ConstantInputChain() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&1 != 0 },
		func(state, _ uint64) bool { return state&1 != 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().Len(got, 2)
	for _, a := range got {
		s.Require().Equal(1.0, a.ApproxCardinality())
	}
}

// S6: empty universe. No attractors, regardless of the pivot strategy.
func (s *ScenarioSuite) TestS6_EmptyUniverse() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&1 == 0 },
	})
	empty := g.UnitUniverse().Minus(g.UnitUniverse())
	got := attractor.Find(g, g.Variables(), empty, attractor.PickVertexPivot)
	s.Require().Empty(got)
}

// Law 3/4/5: completeness, closure, and disjointness together — every
// attractor is non-empty and closed under Post, and no two overlap.
func (s *ScenarioSuite) TestClosureAndDisjointness() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&2 == 0 },
		func(state, _ uint64) bool { return state&1 == 0 },
	})
	got := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
	s.Require().NotEmpty(got)

	for _, a := range got {
		s.Require().False(a.IsEmpty())
		post := g.Post(a)
		s.Require().True(post.IsSubset(a), "an attractor must be closed under Post")
	}

	for i := range got {
		for j := range got {
			if i == j {
				continue
			}
			s.Require().True(got[i].Intersect(got[j]).IsEmpty(), "attractors must be pairwise disjoint")
		}
	}
}

// Law 7: determinism. A fixed seed yields byte-for-byte identical
// pivots, and hence identical output, across repeated runs.
func (s *ScenarioSuite) TestDeterminism_FixedSeedReproducesOutput() {
	g := mustGraph(s.T(), []explicit.UpdateFunc{
		func(state, _ uint64) bool { return state&2 == 0 },
		func(state, _ uint64) bool { return state&1 == 0 },
	})
	pivotA := attractor.NewRandomPivot(g, rand.New(rand.NewSource(42)))
	pivotB := attractor.NewRandomPivot(g, rand.New(rand.NewSource(42)))

	gotA := attractor.Find(g, g.Variables(), g.UnitUniverse(), pivotA)
	gotB := attractor.Find(g, g.Variables(), g.UnitUniverse(), pivotB)

	s.Require().Equal(len(gotA), len(gotB))
	for i := range gotA {
		s.Require().True(gotA[i].Equals(gotB[i]), "same seed must reproduce the same result")
	}
}

// Law 8: lock-step equivalence. The incremental finder returns the
// same set of attractors as the basin-elimination one.
func (s *ScenarioSuite) TestLockstepEquivalence() {
	graphs := []*explicit.Graph{
		mustGraph(s.T(), []explicit.UpdateFunc{
			func(state, _ uint64) bool { return state&1 == 0 },
		}),
		mustGraph(s.T(), []explicit.UpdateFunc{
			func(state, _ uint64) bool { return state&2 == 0 },
			func(state, _ uint64) bool { return state&1 == 0 },
		}),
		mustGraph(s.T(), []explicit.UpdateFunc{
			func(state, _ uint64) bool { return state&1 != 0 },
			func(state, _ uint64) bool { return state&1 != 0 },
		}),
	}

	for _, g := range graphs {
		basin := attractor.Find(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)
		lockstep := attractor.FindLockstep(g, g.Variables(), g.UnitUniverse(), attractor.PickVertexPivot)

		s.Require().Equal(len(basin), len(lockstep))
		for _, want := range basin {
			found := false
			for _, got := range lockstep {
				if want.Equals(got) {
					found = true
					break
				}
			}
			s.Require().True(found, "lock-step result must contain %v", want)
		}
	}
}
