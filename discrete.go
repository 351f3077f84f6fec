// The discrete profile: integer resource identifiers over integer time.

package availability

import "github.com/assuncaomarcos/resource-availability/rangeset"

// DiscreteRange is a half-open range of integer identifiers, such as the
// node IDs of a cluster.
type DiscreteRange = rangeset.Range[int]

// DiscreteSet is a canonical set of discrete ranges.
type DiscreteSet = rangeset.Set[int]

// DiscreteProfile tracks a pool of integer identifiers over integer time.
type DiscreteProfile = Profile[int]

// NewDiscreteRange returns the discrete range [lo, hi).
func NewDiscreteRange(lo, hi int) DiscreteRange {
	return rangeset.NewRange(lo, hi)
}

// NewDiscreteSet builds a discrete set from the given ranges.
func NewDiscreteSet(ranges ...DiscreteRange) *DiscreteSet {
	return rangeset.NewSet(ranges...)
}

// NewDiscreteProfile returns a profile of maxCapacity integer identifiers,
// compared exactly. The initial timeline holds the single entry
// (0, [0, maxCapacity), 1).
func NewDiscreteProfile(maxCapacity int) *DiscreteProfile {
	// The comparator is supplied here, so New cannot fail.
	p, _ := New(maxCapacity, WithComparator[int](ExactComparator[int]{}))

	return p
}
