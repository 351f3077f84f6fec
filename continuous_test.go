package availability_test

import (
	"testing"

	availability "github.com/assuncaomarcos/resource-availability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatCapacity = 10.0

// newFloatProfile returns a fresh continuous profile of measure 10.0.
func newFloatProfile() *availability.ContinuousProfile {
	return availability.NewContinuousProfile(floatCapacity)
}

// allocateFloatSample commits the float mirror of the reference
// allocations: [2.0,7.0) over [5.0,10.0) and [0.0,2.0) over [0.0,5.0).
func allocateFloatSample(t *testing.T, p *availability.ContinuousProfile) {
	t.Helper()
	span1 := availability.NewContinuousSet(availability.NewContinuousRange(2.0, 7.0))
	span2 := availability.NewContinuousSet(availability.NewContinuousRange(0.0, 2.0))
	require.NoError(t, p.AllocateResources(span1, 5.0, 10.0))
	require.NoError(t, p.AllocateResources(span2, 0.0, 5.0))
}

// TestContinuousProfile_Capacity checks the initial full-measure entry.
func TestContinuousProfile_Capacity(t *testing.T) {
	p := newFloatProfile()
	assert.Equal(t, floatCapacity, p.MaxCapacity())

	slot, ok, err := p.FindStartTime(floatCapacity, 0.0, 1.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.0, slot.StartTime(), 1e-9)
	assert.InDelta(t, 1.0, slot.EndTime(), 1e-9)
	assert.InDelta(t, floatCapacity, slot.Resources.Quantity(), 1e-9)
}

// TestContinuousProfile_FindStartTime mirrors the discrete earliest-fit
// query with float bounds.
func TestContinuousProfile_FindStartTime(t *testing.T) {
	p := newFloatProfile()

	slot, ok, err := p.FindStartTime(5.0, 0.0, 10.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.0, slot.StartTime(), 1e-9)
	assert.InDelta(t, 10.0, slot.EndTime(), 1e-9)
	assert.True(t, slot.Resources.Equal(availability.NewContinuousSet(availability.NewContinuousRange(0.0, floatCapacity))))

	allocateFloatSample(t, p)

	slot, ok, err = p.FindStartTime(5.0, 0.0, 10.0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 5.0, slot.StartTime(), 1e-9)
	assert.InDelta(t, 15.0, slot.EndTime(), 1e-9)
	assert.True(t, slot.Resources.Contains(availability.NewContinuousRange(7.0, 10.0)))
}

// TestContinuousProfile_SelectResources mirrors the selection round trip
// on the continuous pool.
func TestContinuousProfile_SelectResources(t *testing.T) {
	p := newFloatProfile()

	slot, ok, err := p.FindStartTime(5.0, 0.0, 10.0)
	require.NoError(t, err)
	require.True(t, ok)
	picked, err := p.SelectResources(slot.Resources, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, picked.Quantity(), 1e-9)

	allocateFloatSample(t, p)

	slot, ok, err = p.FindStartTime(5.0, 0.0, 10.0)
	require.NoError(t, err)
	require.True(t, ok)
	picked, err = p.SelectResources(slot.Resources, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, picked.Quantity(), 1e-9)

	_, err = p.SelectResources(picked, 15.0)
	assert.ErrorIs(t, err, availability.ErrInsufficientResources)
	picked, err = p.SelectSlotResources(slot, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, picked.Quantity(), 1e-9)
	_, err = p.SelectSlotResources(slot, 15.0)
	assert.ErrorIs(t, err, availability.ErrInsufficientResources)
}

// TestContinuousProfile_Allocate mirrors the over-allocation scenario.
func TestContinuousProfile_Allocate(t *testing.T) {
	p := newFloatProfile()
	span := availability.NewContinuousSet(availability.NewContinuousRange(0.0, 8.0))
	require.NoError(t, p.AllocateResources(span, 5.0, 10.0))

	slot, err := p.CheckAvailability(5.0, 5.0, 5.0)
	require.NoError(t, err)
	assert.Nil(t, slot.Resources, "only a measure of 2.0 stays free over [5,10)")
}

// TestContinuousProfile_FreeTimeSlots mirrors the window enumeration.
func TestContinuousProfile_FreeTimeSlots(t *testing.T) {
	p := newFloatProfile()
	allocateFloatSample(t, p)

	slots, err := p.FreeTimeSlots(0.0, 20.0)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.InDelta(t, 0.0, slots[0].StartTime(), 1e-9)
	assert.InDelta(t, 20.0, slots[0].EndTime(), 1e-9)
	assert.True(t, slots[0].Resources.Contains(availability.NewContinuousRange(7.0, 10.0)))
	assert.True(t, slots[1].Resources.Contains(availability.NewContinuousRange(2.0, 7.0)))
	assert.True(t, slots[2].Resources.Contains(availability.NewContinuousRange(0.0, 2.0)))
	assert.True(t, slots[3].Resources.Contains(availability.NewContinuousRange(2.0, 7.0)))
	assert.InDelta(t, 10.0, slots[3].StartTime(), 1e-9)
	assert.InDelta(t, 20.0, slots[3].EndTime(), 1e-9)
}

// TestContinuousProfile_SchedulingOptions mirrors the option enumeration.
func TestContinuousProfile_SchedulingOptions(t *testing.T) {
	p := newFloatProfile()
	allocateFloatSample(t, p)

	slots, err := p.SchedulingOptions(0.0, 20.0, 2.0, 1.0)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.InDelta(t, 0.0, slots[0].StartTime(), 1e-9)
	assert.InDelta(t, 5.0, slots[0].EndTime(), 1e-9)
	assert.InDelta(t, 0.0, slots[1].StartTime(), 1e-9)
	assert.InDelta(t, 20.0, slots[1].EndTime(), 1e-9)
	assert.InDelta(t, 5.0, slots[2].StartTime(), 1e-9)
	assert.InDelta(t, 20.0, slots[2].EndTime(), 1e-9)
	assert.InDelta(t, 10.0, slots[3].StartTime(), 1e-9)
	assert.InDelta(t, 20.0, slots[3].EndTime(), 1e-9)

	assert.True(t, slots[0].Resources.Contains(availability.NewContinuousRange(2.0, 10.0)))
	assert.True(t, slots[1].Resources.Contains(availability.NewContinuousRange(7.0, 10.0)))
	assert.True(t, slots[2].Resources.Contains(availability.NewContinuousRange(0.0, 2.0)))
	assert.True(t, slots[3].Resources.Contains(availability.NewContinuousRange(0.0, 10.0)))
}

// TestContinuousProfile_RemovePastEntries mirrors prefix truncation.
func TestContinuousProfile_RemovePastEntries(t *testing.T) {
	p := newFloatProfile()
	allocateFloatSample(t, p)

	p.RemovePastEntries(5.0)
	assert.Equal(t, 2, p.Len())
	assert.InDelta(t, 5.0, p.StartTime(), 1e-9)
}

// TestContinuousProfile_ToleranceAtBoundaries verifies ε-close instants
// resolve to existing entries instead of spawning near-duplicates.
func TestContinuousProfile_ToleranceAtBoundaries(t *testing.T) {
	p := newFloatProfile()
	span := availability.NewContinuousSet(availability.NewContinuousRange(0.0, 4.0))
	require.NoError(t, p.AllocateResources(span, 5.0, 10.0))
	require.Equal(t, 3, p.Len())

	// A second job whose boundaries are within tolerance of the existing
	// entries pins them rather than inserting new instants.
	other := availability.NewContinuousSet(availability.NewContinuousRange(4.0, 6.0))
	require.NoError(t, p.AllocateResources(other, 5.0+1e-12, 10.0-1e-12))
	assert.Equal(t, 3, p.Len(), "ε-close boundaries reuse the existing entries")

	entries := p.Entries()
	assert.Equal(t, 2, entries[1].NumUnits, "the entry at 5.0 pins both jobs")
	assert.Equal(t, 2, entries[2].NumUnits, "the entry at 10.0 pins both jobs")
}
