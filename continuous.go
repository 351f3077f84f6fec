// The continuous profile: float resource amounts over float time.

package availability

import "github.com/assuncaomarcos/resource-availability/rangeset"

// ContinuousRange is a half-open range of a continuous quantity, such as
// the slice [2.5, 4.0) of a node's memory.
type ContinuousRange = rangeset.Range[float64]

// ContinuousSet is a canonical set of continuous ranges.
type ContinuousSet = rangeset.Set[float64]

// ContinuousProfile tracks a divisible float pool over float time.
type ContinuousProfile = Profile[float64]

// NewContinuousRange returns the continuous range [lo, hi).
func NewContinuousRange(lo, hi float64) ContinuousRange {
	return rangeset.NewRange(lo, hi)
}

// NewContinuousSet builds a continuous set from the given ranges.
func NewContinuousSet(ranges ...ContinuousRange) *ContinuousSet {
	return rangeset.NewSet(ranges...)
}

// NewContinuousProfile returns a profile over a pool of measure
// maxCapacity, compared with the default ε-close tolerance. The initial
// timeline holds the single entry (0.0, [0.0, maxCapacity), 1).
func NewContinuousProfile(maxCapacity float64) *ContinuousProfile {
	// The comparator is supplied here, so New cannot fail.
	p, _ := New(maxCapacity, WithComparator[float64](NewTolerantComparator()))

	return p
}
