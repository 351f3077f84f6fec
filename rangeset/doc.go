// Package rangeset provides ordered sets of half-open ranges over a
// numeric scalar, with the set algebra the availability profile is built on.
//
// 🚀 What is rangeset?
//
//	A small, allocation-conscious interval-set library:
//
//	  • Range[K]  - an immutable half-open interval [Lo, Hi)
//	  • Set[K]    - a canonical, ordered, disjoint union of ranges
//	  • Algebra   - union, intersection, difference, containment, measure
//
// ✨ Why canonical form?
//
//   - Equal sets have equal representations, so Equal is a plain
//     range-by-range comparison.
//   - Iteration order is always ascending by lower bound, which keeps
//     resource selection deterministic across runs.
//   - Touching ranges coalesce: [0,5) ∪ [5,10) is stored as [0,10).
//
// The scalar K is any integer or float type. For integers a range's
// Measure is the count of values it covers; for floats it is the length.
// Both are Hi−Lo under the half-open convention, so the algebra is
// implemented once and instantiated per scalar.
//
// ⚙️ Usage:
//
//	import "github.com/assuncaomarcos/resource-availability/rangeset"
//
//	free := rangeset.NewSet(rangeset.NewRange(0, 10))
//	busy := rangeset.NewSet(rangeset.NewRange(2, 7))
//	left := free.Difference(busy) // {[0, 2), [7, 10)}
//
// All operations return new sets; a Set is never mutated after construction.
//
// Performance:
//
//   - Union / Intersect / Difference: O(n+m) over member ranges
//     (Union pays an extra O(k·log k) canonicalisation sort)
//   - Contains: O(log n)
//   - Quantity / Equal / Copy: O(n)
package rangeset
