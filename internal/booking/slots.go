package booking

import (
	"fmt"
	"time"
)

// Slot catalog bounds. The catalog is a fixed sequence of half-hour labels
// from 08:00 to 16:30 inclusive; it is not derived from the event type's
// duration, buffers, daily limit, or any host availability source.
const (
	slotStartHour   = 8
	slotEndHour     = 16
	slotStepMinutes = 30

	// TimeLayout is the HH:MM format used for slot labels.
	TimeLayout = "15:04"
)

// ListSlots returns the bookable time labels for the selected day.
// The day/month/year parameters are accepted for a future availability
// source; the catalog is currently identical for every day.
func ListSlots(day int, month time.Month, year int) []string {
	var slots []string
	for h := slotStartHour; h <= slotEndHour; h++ {
		for m := 0; m < 60; m += slotStepMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// SlotPicker collects exactly one slot choice. At most one slot is active at
// a time; selecting an already-active slot confirms it.
type SlotPicker struct {
	Active string
}

// Select marks the slot active. Selecting the currently active slot again
// confirms the choice and returns true; selecting a different slot replaces
// the active one and returns false. The empty label is never a valid slot,
// so it can neither activate nor confirm.
func (p *SlotPicker) Select(slot string) (confirmed bool) {
	if slot == "" {
		return false
	}
	if p.Active == slot {
		return true
	}
	p.Active = slot
	return false
}

// Clear drops the active slot.
func (p *SlotPicker) Clear() {
	p.Active = ""
}
