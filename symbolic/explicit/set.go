package explicit

import "github.com/katalvlaran/bnattract/symbolic"

// Set is the explicit-state CVSet: a bitset over flat (state, colour)
// indices, bound to the Graph that gives those indices meaning. Two Sets
// must share the same Graph to be combined; combining a Set with another
// CVSet implementation or with a Set of a different Graph panics with
// symbolic.InvariantViolation.
type Set struct {
	g    *Graph
	bits *bitSet
}

// EmptySet returns the empty CVSet over g's (state, colour) universe.
func EmptySet(g *Graph) *Set {
	return &Set{g: g, bits: newBitSet(g.universeSize())}
}

// UnitUniverse returns every (state, colour) pair g admits.
func (g *Graph) UnitUniverse() symbolic.CVSet {
	return &Set{g: g, bits: fullBitSet(g.universeSize())}
}

func (s *Set) other(o symbolic.CVSet) *Set {
	os, ok := o.(*Set)
	if !ok || os.g != s.g {
		panic(symbolic.InvariantViolation{Where: "explicit: mismatched CVSet implementation or graph"})
	}
	return os
}

func (s *Set) Union(other symbolic.CVSet) symbolic.CVSet {
	o := s.other(other)
	return &Set{g: s.g, bits: s.bits.union(o.bits)}
}

func (s *Set) Intersect(other symbolic.CVSet) symbolic.CVSet {
	o := s.other(other)
	return &Set{g: s.g, bits: s.bits.intersect(o.bits)}
}

func (s *Set) Minus(other symbolic.CVSet) symbolic.CVSet {
	o := s.other(other)
	return &Set{g: s.g, bits: s.bits.minus(o.bits)}
}

func (s *Set) IsEmpty() bool { return s.bits.isEmpty() }

func (s *Set) Equals(other symbolic.CVSet) bool {
	return s.bits.equals(s.other(other).bits)
}

func (s *Set) IsSubset(other symbolic.CVSet) bool {
	return s.bits.isSubset(s.other(other).bits)
}

// PickVertex returns the (state, all-its-colours) singleton for the
// lowest-indexed state that appears in s, per symbolic.CVSet's contract.
// Panics with symbolic.ErrPickOnEmpty wrapped as an InvariantViolation if
// s is empty; callers that need the ordinary-error form should check
// IsEmpty first.
func (s *Set) PickVertex() symbolic.CVSet {
	first := s.bits.firstSet()
	if first < 0 {
		panic(symbolic.InvariantViolation{Where: symbolic.ErrPickOnEmpty.Error()})
	}
	state := first / s.g.numColours
	out := newBitSet(s.g.universeSize())
	base := state * s.g.numColours
	for c := 0; c < s.g.numColours; c++ {
		if s.bits.get(base + c) {
			out.set(base + c)
		}
	}
	return &Set{g: s.g, bits: out}
}

func (s *Set) ApproxCardinality() float64 {
	return float64(s.bits.popCount())
}

func (s *Set) SymbolicSize() int {
	return s.bits.popCount()
}

func (s *Set) Colours() symbolic.ColourSet {
	cols := newBitSet(s.g.numColours)
	s.bits.forEach(func(i int) {
		cols.set(i % s.g.numColours)
	})
	return &ColourSet{g: s.g, bits: cols}
}

func (s *Set) IntersectColours(c symbolic.ColourSet) symbolic.CVSet {
	cs, ok := c.(*ColourSet)
	if !ok || cs.g != s.g {
		panic(symbolic.InvariantViolation{Where: "explicit: mismatched ColourSet implementation or graph"})
	}
	out := newBitSet(s.g.universeSize())
	s.bits.forEach(func(i int) {
		if cs.bits.get(i % s.g.numColours) {
			out.set(i)
		}
	})
	return &Set{g: s.g, bits: out}
}

// Vertices projects out the colours: the result carries, for every state
// present in s for at least one colour, that state under every colour in
// s.g's colour universe.
func (s *Set) Vertices() symbolic.CVSet {
	states := newBitSet(s.g.NumStates())
	s.bits.forEach(func(i int) {
		states.set(i / s.g.numColours)
	})
	out := newBitSet(s.g.universeSize())
	states.forEach(func(state int) {
		base := state * s.g.numColours
		for c := 0; c < s.g.numColours; c++ {
			out.set(base + c)
		}
	})
	return &Set{g: s.g, bits: out}
}

// StateCount reports how many distinct states appear in s for at least
// one colour.
func (s *Set) StateCount() int {
	states := newBitSet(s.g.NumStates())
	s.bits.forEach(func(i int) {
		states.set(i / s.g.numColours)
	})
	return states.popCount()
}
