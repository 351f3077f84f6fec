// Comparators for the time/quantity scalar.
//
// All profile algorithms compare times and quantities exclusively through a
// Comparator, never with raw operators: the discrete profile needs ordinary
// integer comparison while the continuous profile must treat ε-close floats
// as equal, and the algorithm bodies are shared between the two.

package availability

import (
	"math"

	"github.com/assuncaomarcos/resource-availability/rangeset"
)

// Comparator defines a total order on the scalar K with tolerance-aware
// equality. Implementations must keep Lt/Gt strict and derive Le/Ge as
// "strict or equal" so that the order stays total under a non-zero
// tolerance.
type Comparator[K rangeset.Scalar] interface {
	// Lt reports whether a is strictly smaller than b.
	Lt(a, b K) bool

	// Le reports whether a is smaller than or equal to b.
	Le(a, b K) bool

	// Eq reports whether a equals b (within tolerance, if any).
	Eq(a, b K) bool

	// Ge reports whether a is greater than or equal to b.
	Ge(a, b K) bool

	// Gt reports whether a is strictly greater than b.
	Gt(a, b K) bool

	// Ne reports whether a differs from b.
	Ne(a, b K) bool
}

// ExactComparator orders any scalar by the ordinary comparison operators.
// It is the comparator of the discrete profile, where times and quantities
// are integers and equality is exact.
type ExactComparator[K rangeset.Scalar] struct{}

// Lt reports a < b.
func (ExactComparator[K]) Lt(a, b K) bool { return a < b }

// Le reports a <= b.
func (ExactComparator[K]) Le(a, b K) bool { return a <= b }

// Eq reports a == b.
func (ExactComparator[K]) Eq(a, b K) bool { return a == b }

// Ge reports a >= b.
func (ExactComparator[K]) Ge(a, b K) bool { return a >= b }

// Gt reports a > b.
func (ExactComparator[K]) Gt(a, b K) bool { return a > b }

// Ne reports a != b.
func (ExactComparator[K]) Ne(a, b K) bool { return a != b }

// Default tolerances of TolerantComparator, matching the IEEE "close"
// convention: a purely relative test at nine significant digits.
const (
	// DefaultRelTolerance is the default relative tolerance.
	DefaultRelTolerance = 1e-9

	// DefaultAbsTolerance is the default absolute tolerance.
	DefaultAbsTolerance = 0.0
)

// TolerantComparator orders float64 values with ε-close equality:
// two values are equal when |a−b| <= max(rel·max(|a|,|b|), abs).
// Lt and Gt remain strict; Le and Ge are "strict or close".
//
// It is the comparator of the continuous profile, where repeated float
// arithmetic on times and quantities accumulates rounding error.
type TolerantComparator struct {
	rel float64
	abs float64
}

// NewTolerantComparator returns a comparator with the default tolerances.
func NewTolerantComparator() TolerantComparator {
	return TolerantComparator{rel: DefaultRelTolerance, abs: DefaultAbsTolerance}
}

// NewTolerantComparatorWith returns a comparator with explicit relative
// and absolute tolerances. Negative tolerances are clamped to zero.
func NewTolerantComparatorWith(rel, abs float64) TolerantComparator {
	if rel < 0 {
		rel = 0
	}
	if abs < 0 {
		abs = 0
	}

	return TolerantComparator{rel: rel, abs: abs}
}

// close reports whether a and b are equal within the tolerances.
func (c TolerantComparator) close(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(c.rel*scale, c.abs)
}

// Lt reports a < b, excluding ε-close values.
func (c TolerantComparator) Lt(a, b float64) bool { return a < b && !c.close(a, b) }

// Le reports a < b or ε-close equality.
func (c TolerantComparator) Le(a, b float64) bool { return a < b || c.close(a, b) }

// Eq reports ε-close equality.
func (c TolerantComparator) Eq(a, b float64) bool { return c.close(a, b) }

// Ge reports a > b or ε-close equality.
func (c TolerantComparator) Ge(a, b float64) bool { return a > b || c.close(a, b) }

// Gt reports a > b, excluding ε-close values.
func (c TolerantComparator) Gt(a, b float64) bool { return a > b && !c.close(a, b) }

// Ne reports the values are not ε-close.
func (c TolerantComparator) Ne(a, b float64) bool { return !c.close(a, b) }
