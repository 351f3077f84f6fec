// Package availability tracks, over time, which portions of a divisible
// resource pool are free, and answers scheduling queries against that
// history.
//
// 🚀 What is an availability profile?
//
//	The planning substrate a scheduler consults before placing work:
//
//	  • "Given Q units for duration D from time T, which identifiers are free?"
//	  • "What is the earliest start time at which Q units fit for D?"
//	  • "Which free windows exist between T1 and T2?"
//	  • "Commit this allocation."
//
// The profile is a sorted timeline of entries; each entry carries the set
// of resource identifiers free from its instant until the next entry.
// Queries intersect those sets across a window, so a returned slot names
// identifiers that are free for the *whole* duration — not merely a
// sufficient count at each instant.
//
// ✨ Key properties:
//
//   - Identifier-preserving — availability is carried as a range set
//     (see subpackage rangeset), never collapsed to a scalar
//   - Scalar-generic       — one implementation, instantiated for integer
//     (DiscreteProfile) and float (ContinuousProfile) pools
//   - Comparator-driven    — every time and quantity comparison goes
//     through a Comparator, exact for integers, ε-close for floats
//   - Passive              — no goroutines, no I/O, no internal locking;
//     GuardedProfile offers an optional RWMutex wrapper
//
// ⚙️ Usage:
//
//	import availability "github.com/assuncaomarcos/resource-availability"
//
//	profile := availability.NewDiscreteProfile(64)
//	slot, ok, err := profile.FindStartTime(16, 0, 120)
//	if err != nil || !ok {
//	  // no window fits
//	}
//	picked, err := profile.SelectSlotResources(slot, 16)
//	if err == nil {
//	  err = profile.AllocateResources(picked, slot.StartTime(), slot.EndTime())
//	}
//
// Concurrent use must be serialised by the caller (single writer or many
// readers); wrap with Guarded for a ready-made RWMutex discipline.
package availability
