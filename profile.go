// The availability profile: a timeline of free-resource sets and the five
// scheduling operations that query and mutate it.
//
// All algorithms carry full identifier sets through their traversals and
// intersect them entry by entry: a valid placement needs the same
// identifiers free throughout its duration, not merely a sufficient count
// at each instant. Collapsing a set to its quantity mid-walk would accept
// placements the discrete pool cannot actually honour.

package availability

import (
	"fmt"
	"strings"

	"github.com/assuncaomarcos/resource-availability/rangeset"
)

// Profile is an availability profile over the scalar K. It is born with a
// single entry granting the full capacity [0, C) from its start time, and
// only ever changes through AllocateResources and RemovePastEntries.
//
// A Profile is passive: no internal goroutines, no locking. Callers must
// serialise a mutator against all other use; see GuardedProfile for a
// ready-made wrapper.
type Profile[K rangeset.Scalar] struct {
	avail       *timeline[K]
	maxCapacity K
	comp        Comparator[K]
}

// New constructs a profile with capacity maxCapacity and the given
// options. A comparator is mandatory; New returns ErrMissingComparator
// without one. The initial timeline holds the single pinned entry
// (startTime, [0, maxCapacity), 1).
func New[K rangeset.Scalar](maxCapacity K, opts ...Option[K]) (*Profile[K], error) {
	var cfg config[K]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.comparator == nil {
		return nil, ErrMissingComparator
	}

	var zero K
	p := &Profile[K]{
		avail:       newTimeline(cfg.comparator),
		maxCapacity: maxCapacity,
		comp:        cfg.comparator,
	}
	p.avail.insertAt(0, newEntry(cfg.startTime, rangeset.NewSet(rangeset.NewRange(zero, maxCapacity))))

	return p, nil
}

// MaxCapacity returns the capacity the profile was created with.
func (p *Profile[K]) MaxCapacity() K { return p.maxCapacity }

// Len returns the number of timeline entries.
func (p *Profile[K]) Len() int { return p.avail.len() }

// StartTime returns the instant of the current first entry.
func (p *Profile[K]) StartTime() K { return p.avail.at(0).Time }

// Entries returns a deep-copied snapshot of the timeline, in time order.
// Intended for diagnostics and tests; mutating the snapshot does not
// affect the profile.
func (p *Profile[K]) Entries() []ProfileEntry[K] {
	out := make([]ProfileEntry[K], 0, p.avail.len())
	for i := 0; i < p.avail.len(); i++ {
		e := p.avail.at(i)
		out = append(out, ProfileEntry[K]{Time: e.Time, Resources: e.Resources.Copy(), NumUnits: e.NumUnits})
	}

	return out
}

// anchor returns the entry governing availability at time t: the greatest
// entry with Time <= t. Times before the first entry clamp to it, which
// cannot occur for t at or after the profile's start time.
func (p *Profile[K]) anchor(t K) (int, *ProfileEntry[K]) {
	idx, e := p.avail.findLE(t)
	if idx < 0 {
		return 0, p.avail.at(0)
	}

	return idx, e
}

// CheckAvailability reports which identifiers are free for the whole
// window [startTime, startTime+duration). The slot's Resources is the
// exact set free throughout, or nil when its measure falls below
// quantity. Returns ErrInvalidWindow when duration is not positive.
func (p *Profile[K]) CheckAvailability(quantity, startTime, duration K) (TimeSlot[K], error) {
	var zero K
	if p.comp.Le(duration, zero) {
		return TimeSlot[K]{}, ErrInvalidWindow
	}
	endTime := startTime + duration

	// 1) Anchor at the entry in effect at startTime.
	idx, entry := p.anchor(startTime)
	resources := entry.Resources.Copy()

	// 2) Intersect with every entry that starts inside the window,
	//    giving up as soon as the surviving set is too small.
	for i := idx + 1; i < p.avail.len(); i++ {
		e := p.avail.at(i)
		if p.comp.Ge(e.Time, endTime) {
			break
		}
		resources = resources.Intersect(e.Resources)
		if p.comp.Lt(resources.Quantity(), quantity) {
			resources = nil
			break
		}
	}

	// 3) The anchor alone may already be short.
	if resources != nil && p.comp.Lt(resources.Quantity(), quantity) {
		resources = nil
	}

	return TimeSlot[K]{Period: rangeset.NewRange(startTime, endTime), Resources: resources}, nil
}

// FindStartTime returns the earliest slot at or after readyTime in which
// at least quantity units stay free for the full duration. The returned
// set is the entire free set over the window, not a trimmed one; callers
// pick quantity's worth with SelectResources. ok is false when no window
// fits. Returns ErrInvalidWindow when duration is not positive.
func (p *Profile[K]) FindStartTime(quantity, readyTime, duration K) (TimeSlot[K], bool, error) {
	var zero K
	if p.comp.Le(duration, zero) {
		return TimeSlot[K]{}, false, ErrInvalidWindow
	}

	idx, _ := p.anchor(readyTime)
	n := p.avail.len()

	// Try each entry as a candidate start; the first anchor whose window
	// survives wins, which makes the answer the earliest possible start.
	for ai := idx; ai < n; ai++ {
		anchorEntry := p.avail.at(ai)

		pos := anchorEntry.Time
		if p.comp.Lt(pos, readyTime) {
			pos = readyTime
		}
		posEnd := pos + duration
		intersect := anchorEntry.Resources.Copy()

		for i := ai + 1; i < n; i++ {
			if p.comp.Lt(intersect.Quantity(), quantity) {
				break
			}
			e := p.avail.at(i)
			if p.comp.Ge(e.Time, posEnd) {
				break
			}
			intersect = intersect.Intersect(e.Resources)
		}

		if p.comp.Ge(intersect.Quantity(), quantity) {
			return TimeSlot[K]{Period: rangeset.NewRange(pos, posEnd), Resources: intersect}, true, nil
		}
	}

	return TimeSlot[K]{}, false, nil
}

// freeOver returns the set of identifiers free throughout [startTime,
// endTime): the intersection of every entry overlapping the window.
func (p *Profile[K]) freeOver(startTime, endTime K) *rangeset.Set[K] {
	idx, entry := p.anchor(startTime)
	free := entry.Resources.Copy()
	for i := idx + 1; i < p.avail.len(); i++ {
		e := p.avail.at(i)
		if p.comp.Ge(e.Time, endTime) {
			break
		}
		free = free.Intersect(e.Resources)
	}

	return free
}

// AllocateResources marks the identifier set busy over [startTime,
// endTime): boundary entries are created (or their pin counts bumped when
// the instant already exists) and the set is subtracted from every entry
// inside the window. The mutation is all-or-nothing: ErrInvalidWindow and
// ErrCapacityExceeded are detected before the timeline is touched.
func (p *Profile[K]) AllocateResources(resources *rangeset.Set[K], startTime, endTime K) error {
	if p.comp.Le(endTime, startTime) {
		return ErrInvalidWindow
	}
	if resources == nil || resources.IsEmpty() {
		return nil
	}
	if !resources.Difference(p.freeOver(startTime, endTime)).IsEmpty() {
		return ErrCapacityExceeded
	}

	// 1) Start boundary: reuse a coincident entry, else split the anchor.
	idx, anchorEntry := p.anchor(startTime)
	var cursor *ProfileEntry[K]
	if p.comp.Eq(anchorEntry.Time, startTime) {
		anchorEntry.NumUnits++
		cursor = anchorEntry
	} else {
		cursor = anchorEntry.cloneAt(startTime)
		idx++
		p.avail.insertAt(idx, cursor)
	}

	// 2) Interior: subtract from every entry up to the end boundary. The
	//    cursor trails one entry behind so a boundary coincident with
	//    endTime keeps its availability untouched.
	i := idx + 1
	for ; i < p.avail.len(); i++ {
		e := p.avail.at(i)
		if p.comp.Gt(e.Time, endTime) {
			break
		}
		if p.comp.Eq(e.Time, endTime) {
			cursor.Resources = cursor.Resources.Difference(resources)
			e.NumUnits++

			return nil
		}
		cursor.Resources = cursor.Resources.Difference(resources)
		cursor = e
	}

	// 3) End boundary: no entry at endTime, so restore availability there
	//    before subtracting from the last interior entry.
	p.avail.insertAt(i, cursor.cloneAt(endTime))
	cursor.Resources = cursor.Resources.Difference(resources)

	return nil
}

// SelectResources picks a sub-set of exactly quantity units from
// resources, taking member ranges in ascending order and splitting the
// last one. The pick is deterministic, so a scheduling replay reproduces
// identical placements. Returns ErrInsufficientResources when resources
// is nil or holds less than quantity.
func (p *Profile[K]) SelectResources(resources *rangeset.Set[K], quantity K) (*rangeset.Set[K], error) {
	if resources == nil || p.comp.Lt(resources.Quantity(), quantity) {
		return nil, ErrInsufficientResources
	}

	var zero K
	need := quantity
	picked := make([]rangeset.Range[K], 0, resources.Len())
	for _, r := range resources.Ranges() {
		if p.comp.Le(need, zero) {
			break
		}
		if m := r.Measure(); p.comp.Le(m, need) {
			picked = append(picked, r)
			need -= m
			continue
		}
		picked = append(picked, rangeset.NewRange(r.Lo, r.Lo+need))
		break
	}

	return rangeset.NewSet(picked...), nil
}

// SelectSlotResources picks quantity units from the slot's resource set.
// See SelectResources.
func (p *Profile[K]) SelectSlotResources(slot TimeSlot[K], quantity K) (*rangeset.Set[K], error) {
	return p.SelectResources(slot.Resources, quantity)
}

// FreeTimeSlots enumerates the maximal free windows between startTime and
// endTime. Identifier coverage is consumed as it is reported: once a slot
// has covered an identifier over a window, that identifier is subtracted
// from the working sets so overlapping windows do not re-report it. Slots
// come out in ascending start order; the original timeline is not
// modified. Returns ErrInvalidWindow when endTime is not after startTime.
func (p *Profile[K]) FreeTimeSlots(startTime, endTime K) ([]TimeSlot[K], error) {
	if p.comp.Le(endTime, startTime) {
		return nil, ErrInvalidWindow
	}

	// 1) Deep-copy the entries overlapping [startTime, endTime]; the walk
	//    below consumes their sets.
	startIdx, _ := p.avail.findLE(startTime)
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx, _ := p.avail.findLE(endTime)
	clone := p.avail.cloneWindow(startIdx, endIdx)

	var zero K
	var slots []TimeSlot[K]

	// 2) Drain each entry: repeatedly take what is left of its set, ride
	//    it forward while any of it stays free, report the window, and
	//    remove the reported identifiers from every entry it spanned.
	for ei, e := range clone {
		for p.comp.Gt(e.Resources.Quantity(), zero) {
			u := e.Resources.Copy()
			slotEnd := endTime
			last := ei

			for fi := ei + 1; fi < len(clone); fi++ {
				f := clone[fi]
				survived := u.Intersect(f.Resources)
				if survived.IsEmpty() {
					slotEnd = f.Time

					break
				}
				u = survived
				last = fi
			}

			slots = append(slots, TimeSlot[K]{Period: rangeset.NewRange(e.Time, slotEnd), Resources: u})
			for gi := ei; gi <= last; gi++ {
				clone[gi].Resources = clone[gi].Resources.Difference(u)
			}
		}
	}

	return slots, nil
}

// SchedulingOptions enumerates candidate placements between startTime and
// endTime lasting at least minDuration with at least minQuantity units
// free throughout. Unlike FreeTimeSlots, options may share identifiers:
// every entry in the window anchors its own walk. Slots come out ordered
// by ascending start, then ascending end. Returns ErrInvalidWindow when
// endTime is not after startTime.
func (p *Profile[K]) SchedulingOptions(startTime, endTime, minDuration, minQuantity K) ([]TimeSlot[K], error) {
	if p.comp.Le(endTime, startTime) {
		return nil, ErrInvalidWindow
	}

	idx, _ := p.avail.findLE(startTime)
	if idx < 0 {
		idx = 0
	}
	n := p.avail.len()
	var slots []TimeSlot[K]

	fits := func(from, to K, set *rangeset.Set[K]) bool {
		return p.comp.Ge(to-from, minDuration) && p.comp.Ge(set.Quantity(), minQuantity)
	}

	for ai := idx; ai < n; ai++ {
		anchorEntry := p.avail.at(ai)
		if p.comp.Ge(anchorEntry.Time, endTime) {
			break
		}
		if anchorEntry.Resources.IsEmpty() {
			continue
		}

		pos := anchorEntry.Time
		if p.comp.Lt(pos, startTime) {
			pos = startTime
		}
		r := anchorEntry.Resources.Copy()

		// Walk forward from the anchor; every time a follower shrinks the
		// surviving set, the window [pos, follower) closes for the larger
		// set and the walk continues with the smaller one.
		for fi := ai + 1; fi < n; fi++ {
			f := p.avail.at(fi)
			if p.comp.Ge(f.Time, endTime) {
				break
			}
			reduced := r.Intersect(f.Resources)
			if reduced.Equal(r) {
				continue
			}
			if fits(pos, f.Time, r) {
				slots = append(slots, TimeSlot[K]{Period: rangeset.NewRange(pos, f.Time), Resources: r})
			}
			r = reduced
			if r.IsEmpty() {
				break
			}
		}

		if !r.IsEmpty() && fits(pos, endTime, r) {
			slots = append(slots, TimeSlot[K]{Period: rangeset.NewRange(pos, endTime), Resources: r})
		}
	}

	return slots, nil
}

// RemovePastEntries drops every entry before the one in effect at
// earliestTime, making that entry the new head of the timeline. A time at
// or before the first entry is a no-op.
func (p *Profile[K]) RemovePastEntries(earliestTime K) {
	idx, _ := p.avail.findLE(earliestTime)
	p.avail.truncateBefore(idx)
}

// String renders the profile and its timeline for diagnostics.
func (p *Profile[K]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profile(maxCapacity=%v, avail=[", p.maxCapacity)
	for i := 0; i < p.avail.len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.avail.at(i).String())
	}
	b.WriteString("])")

	return b.String()
}
