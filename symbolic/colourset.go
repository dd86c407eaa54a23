package symbolic

// ColourSet is a Boolean algebra over the network's colour space (the set
// of admissible parameter valuations). Implementations must be
// value-like: every operation returns a new ColourSet and never mutates
// its receiver or arguments.
type ColourSet interface {
	Union(other ColourSet) ColourSet
	Intersect(other ColourSet) ColourSet
	Minus(other ColourSet) ColourSet
	IsEmpty() bool
	Equals(other ColourSet) bool
	IsSubset(other ColourSet) bool
}
