package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSlots(t *testing.T) {
	slots := ListSlots(15, time.May, 2025)

	require.Len(t, slots, 18)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	// Every label parses as HH:MM and the sequence ascends in 30m steps.
	prev, err := time.Parse(TimeLayout, slots[0])
	require.NoError(t, err)
	for _, s := range slots[1:] {
		cur, err := time.Parse(TimeLayout, s)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cur.Sub(prev))
		prev = cur
	}
}

func TestListSlotsSameForEveryDay(t *testing.T) {
	a := ListSlots(1, time.January, 2025)
	b := ListSlots(31, time.December, 2026)
	assert.Equal(t, a, b)
}

func TestSlotPickerSelect(t *testing.T) {
	p := &SlotPicker{}

	confirmed := p.Select("10:00")
	assert.False(t, confirmed)
	assert.Equal(t, "10:00", p.Active)

	// Picking a different slot replaces the active one.
	confirmed = p.Select("10:30")
	assert.False(t, confirmed)
	assert.Equal(t, "10:30", p.Active)

	// Re-selecting the active slot confirms it.
	confirmed = p.Select("10:30")
	assert.True(t, confirmed)
	assert.Equal(t, "10:30", p.Active)
}

func TestSlotPickerSelectEmptyLabel(t *testing.T) {
	p := &SlotPicker{}

	// The empty label never activates, and never confirms while nothing
	// is active.
	assert.False(t, p.Select(""))
	assert.Empty(t, p.Active)
	assert.False(t, p.Select(""))

	// Nor does it touch a real active slot.
	p.Select("10:00")
	assert.False(t, p.Select(""))
	assert.Equal(t, "10:00", p.Active)
}

func TestSlotPickerClear(t *testing.T) {
	p := &SlotPicker{}
	p.Select("09:00")

	p.Clear()

	assert.Empty(t, p.Active)
	assert.False(t, p.Select("09:00"), "a fresh select after clear should not confirm")
}
