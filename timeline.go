// The timeline container: a sequence of profile entries kept strictly
// increasing in time, with comparator-aware predecessor lookup and ordered
// insertion. Mirrors the role a sorted keyed list plays in availability
// profiles: O(log n) positioning, O(n) splice, in-order scans.

package availability

import (
	"sort"

	"github.com/assuncaomarcos/resource-availability/rangeset"
)

// timeline holds profile entries sorted by strictly increasing time.
// All positioning goes through the comparator so that ε-close float times
// resolve to the same entry rather than to a duplicate neighbour.
type timeline[K rangeset.Scalar] struct {
	entries []*ProfileEntry[K]
	comp    Comparator[K]
}

// newTimeline returns an empty timeline ordered by comp.
func newTimeline[K rangeset.Scalar](comp Comparator[K]) *timeline[K] {
	return &timeline[K]{comp: comp}
}

// len returns the number of entries.
func (l *timeline[K]) len() int { return len(l.entries) }

// at returns the entry at index i.
func (l *timeline[K]) at(i int) *ProfileEntry[K] { return l.entries[i] }

// findLE returns the index and entry of the greatest entry whose time is
// less than or equal to t, or (-1, nil) when t precedes every entry.
// O(log n).
func (l *timeline[K]) findLE(t K) (int, *ProfileEntry[K]) {
	// First index whose time lies strictly after t; its predecessor is the
	// answer. Gt is monotone over the sorted times, as sort.Search needs.
	idx := sort.Search(len(l.entries), func(i int) bool {
		return l.comp.Gt(l.entries[i].Time, t)
	}) - 1

	if idx < 0 {
		return -1, nil
	}

	return idx, l.entries[idx]
}

// insert places e preserving time order. The caller must have established
// that no entry carries a time equal to e.Time. O(log n) to position,
// O(n) to splice.
func (l *timeline[K]) insert(e *ProfileEntry[K]) {
	idx := sort.Search(len(l.entries), func(i int) bool {
		return l.comp.Gt(l.entries[i].Time, e.Time)
	})
	l.insertAt(idx, e)
}

// insertAt splices e in at index i, shifting later entries right.
func (l *timeline[K]) insertAt(i int, e *ProfileEntry[K]) {
	l.entries = append(l.entries, nil)
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = e
}

// truncateBefore drops entries [0, i), keeping the entry at i as the new
// first entry.
func (l *timeline[K]) truncateBefore(i int) {
	if i <= 0 {
		return
	}
	kept := make([]*ProfileEntry[K], len(l.entries)-i)
	copy(kept, l.entries[i:])
	l.entries = kept
}

// cloneWindow deep-copies entries [from, to] inclusive, for traversals
// that consume availability as they report it.
func (l *timeline[K]) cloneWindow(from, to int) []*ProfileEntry[K] {
	if from < 0 {
		from = 0
	}
	if to >= len(l.entries) {
		to = len(l.entries) - 1
	}
	if from > to {
		return nil
	}

	out := make([]*ProfileEntry[K], 0, to-from+1)
	for _, e := range l.entries[from : to+1] {
		out = append(out, &ProfileEntry[K]{Time: e.Time, Resources: e.Resources.Copy(), NumUnits: e.NumUnits})
	}

	return out
}
