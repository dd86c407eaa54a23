package explicit

import "github.com/katalvlaran/bnattract/symbolic"

// ColourSet is the explicit-state ColourSet: a bitset over the graph's
// flat colour indices.
type ColourSet struct {
	g    *Graph
	bits *bitSet
}

func (c *ColourSet) other(o symbolic.ColourSet) *ColourSet {
	oc, ok := o.(*ColourSet)
	if !ok || oc.g != c.g {
		panic(symbolic.InvariantViolation{Where: "explicit: mismatched ColourSet implementation or graph"})
	}
	return oc
}

func (c *ColourSet) Union(other symbolic.ColourSet) symbolic.ColourSet {
	return &ColourSet{g: c.g, bits: c.bits.union(c.other(other).bits)}
}

func (c *ColourSet) Intersect(other symbolic.ColourSet) symbolic.ColourSet {
	return &ColourSet{g: c.g, bits: c.bits.intersect(c.other(other).bits)}
}

func (c *ColourSet) Minus(other symbolic.ColourSet) symbolic.ColourSet {
	return &ColourSet{g: c.g, bits: c.bits.minus(c.other(other).bits)}
}

func (c *ColourSet) IsEmpty() bool { return c.bits.isEmpty() }

func (c *ColourSet) Equals(other symbolic.ColourSet) bool {
	return c.bits.equals(c.other(other).bits)
}

func (c *ColourSet) IsSubset(other symbolic.ColourSet) bool {
	return c.bits.isSubset(c.other(other).bits)
}
