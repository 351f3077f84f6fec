// An optional synchronised facade over Profile. The core stays lock-free
// by contract (single writer or many readers, serialised by the caller);
// GuardedProfile packages that contract as an RWMutex so callers that mix
// goroutines do not have to build it themselves.

package availability

import (
	"sync"

	"github.com/assuncaomarcos/resource-availability/rangeset"
)

// GuardedProfile wraps a Profile with a read-write mutex: queries run
// under the read lock, mutators under the write lock. The wrapped profile
// must not be used directly while the wrapper is in service.
type GuardedProfile[K rangeset.Scalar] struct {
	mu sync.RWMutex
	p  *Profile[K]
}

// Guarded wraps p in a GuardedProfile.
func Guarded[K rangeset.Scalar](p *Profile[K]) *GuardedProfile[K] {
	return &GuardedProfile[K]{p: p}
}

// MaxCapacity returns the capacity the profile was created with.
func (g *GuardedProfile[K]) MaxCapacity() K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.MaxCapacity()
}

// Len returns the number of timeline entries.
func (g *GuardedProfile[K]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.Len()
}

// StartTime returns the instant of the current first entry.
func (g *GuardedProfile[K]) StartTime() K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.StartTime()
}

// Entries returns a deep-copied snapshot of the timeline.
func (g *GuardedProfile[K]) Entries() []ProfileEntry[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.Entries()
}

// CheckAvailability runs Profile.CheckAvailability under the read lock.
func (g *GuardedProfile[K]) CheckAvailability(quantity, startTime, duration K) (TimeSlot[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.CheckAvailability(quantity, startTime, duration)
}

// FindStartTime runs Profile.FindStartTime under the read lock.
func (g *GuardedProfile[K]) FindStartTime(quantity, readyTime, duration K) (TimeSlot[K], bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.FindStartTime(quantity, readyTime, duration)
}

// FreeTimeSlots runs Profile.FreeTimeSlots under the read lock.
func (g *GuardedProfile[K]) FreeTimeSlots(startTime, endTime K) ([]TimeSlot[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.FreeTimeSlots(startTime, endTime)
}

// SchedulingOptions runs Profile.SchedulingOptions under the read lock.
func (g *GuardedProfile[K]) SchedulingOptions(startTime, endTime, minDuration, minQuantity K) ([]TimeSlot[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.SchedulingOptions(startTime, endTime, minDuration, minQuantity)
}

// SelectResources runs Profile.SelectResources under the read lock. The
// selection reads only its arguments, but the comparator lives on the
// profile, so the wrapper still guards it.
func (g *GuardedProfile[K]) SelectResources(resources *rangeset.Set[K], quantity K) (*rangeset.Set[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.SelectResources(resources, quantity)
}

// SelectSlotResources runs Profile.SelectSlotResources under the read lock.
func (g *GuardedProfile[K]) SelectSlotResources(slot TimeSlot[K], quantity K) (*rangeset.Set[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.p.SelectSlotResources(slot, quantity)
}

// AllocateResources runs Profile.AllocateResources under the write lock.
func (g *GuardedProfile[K]) AllocateResources(resources *rangeset.Set[K], startTime, endTime K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.p.AllocateResources(resources, startTime, endTime)
}

// RemovePastEntries runs Profile.RemovePastEntries under the write lock.
func (g *GuardedProfile[K]) RemovePastEntries(earliestTime K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.p.RemovePastEntries(earliestTime)
}
