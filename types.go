// Package availability defines the profile's value types, construction
// options, and sentinel errors.
//
// This file declares TimeSlot, ProfileEntry, Option, and the error
// taxonomy. The timeline container lives in timeline.go and the
// algorithms in profile.go.
//
// Errors:
//
//	ErrMissingComparator      - profile constructed without a comparator.
//	ErrInsufficientResources  - selection asked for more than the set holds.
//	ErrInvalidWindow          - operation given an end not after its start.
//	ErrCapacityExceeded       - allocation of identifiers that are not free.
package availability

import (
	"errors"
	"fmt"

	"github.com/assuncaomarcos/resource-availability/rangeset"
)

// Sentinel errors for profile operations.
var (
	// ErrMissingComparator indicates New was called without WithComparator.
	ErrMissingComparator = errors.New("availability: comparator required to compare times and quantities")

	// ErrInsufficientResources indicates a selection from an absent set or
	// one whose measure is below the requested quantity.
	ErrInsufficientResources = errors.New("availability: insufficient resources to satisfy quantity")

	// ErrInvalidWindow indicates a time window whose end does not lie
	// strictly after its start.
	ErrInvalidWindow = errors.New("availability: window end must be after start")

	// ErrCapacityExceeded indicates an allocation of identifiers that are
	// not free throughout the requested window.
	ErrCapacityExceeded = errors.New("availability: resources not available over the requested window")
)

// TimeSlot is a query answer: a time period and the identifier set free
// throughout it. Resources is nil when no identifier satisfies the query
// for the whole period.
type TimeSlot[K rangeset.Scalar] struct {
	// Period is the half-open time window [start, end).
	Period rangeset.Range[K]

	// Resources names every identifier free throughout Period, or is nil.
	Resources *rangeset.Set[K]
}

// StartTime returns the inclusive start of the slot's period.
func (s TimeSlot[K]) StartTime() K { return s.Period.Lo }

// EndTime returns the exclusive end of the slot's period.
func (s TimeSlot[K]) EndTime() K { return s.Period.Hi }

// String renders the slot for diagnostics, e.g.
// "TimeSlot(period=[5, 15), resources={[0, 2), [7, 10)})".
func (s TimeSlot[K]) String() string {
	if s.Resources == nil {
		return fmt.Sprintf("TimeSlot(period=%v, resources=<none>)", s.Period)
	}

	return fmt.Sprintf("TimeSlot(period=%v, resources=%v)", s.Period, s.Resources)
}

// ProfileEntry marks an instant at which availability changes. The entry's
// resource set holds from Time (inclusive) until the next entry's time
// (exclusive); the last entry extends indefinitely.
//
// NumUnits counts the jobs whose start or end coincides with Time; the
// profile's initial entry starts at 1 before any job pins it. An
// entry is pinned on the timeline while NumUnits >= 1, even when its set
// matches a neighbour's, so that boundary instants are never coalesced
// away from under an allocation.
type ProfileEntry[K rangeset.Scalar] struct {
	// Time is the instant this entry takes effect.
	Time K

	// Resources is the set of identifiers free from Time onwards.
	Resources *rangeset.Set[K]

	// NumUnits is the number of jobs pinning this instant.
	NumUnits int
}

// newEntry builds an entry pinned by a single unit.
func newEntry[K rangeset.Scalar](time K, resources *rangeset.Set[K]) *ProfileEntry[K] {
	return &ProfileEntry[K]{Time: time, Resources: resources, NumUnits: 1}
}

// cloneAt returns a single-unit copy of the entry carrying the same
// availability at a new instant.
func (e *ProfileEntry[K]) cloneAt(time K) *ProfileEntry[K] {
	return newEntry(time, e.Resources.Copy())
}

// String renders the entry for diagnostics.
func (e *ProfileEntry[K]) String() string {
	return fmt.Sprintf("ProfileEntry(time=%v, resources=%v, numUnits=%d)", e.Time, e.Resources, e.NumUnits)
}

// config collects construction-time settings of a Profile.
type config[K rangeset.Scalar] struct {
	comparator Comparator[K]
	startTime  K
}

// Option configures a Profile before creation. Options are applied in the
// order given to New.
type Option[K rangeset.Scalar] func(*config[K])

// WithComparator sets the comparator used for every time and quantity
// comparison. New fails with ErrMissingComparator when no comparator is
// configured.
func WithComparator[K rangeset.Scalar](c Comparator[K]) Option[K] {
	return func(cfg *config[K]) { cfg.comparator = c }
}

// WithStartTime sets the instant the initial full-capacity entry takes
// effect. The default is the scalar's zero value.
func WithStartTime[K rangeset.Scalar](t K) Option[K] {
	return func(cfg *config[K]) { cfg.startTime = t }
}
