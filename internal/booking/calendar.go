package booking

import (
	"time"
)

// gridCapacity is the full 6x7 month grid. Leading cells before day 1 are
// blank placeholders; the grid is not padded past the last day of the month.
const gridCapacity = 42

// Cell is one cell of the month grid. Day is 0 for a blank placeholder.
type Cell struct {
	Day int
}

// Blank reports whether the cell is a leading placeholder.
func (c Cell) Blank() bool { return c.Day == 0 }

// RenderMonth produces the cell sequence for the given month: one blank cell
// per weekday before the 1st (Sunday-based), then one cell per day of the
// month. The result is pure given (month, year).
func RenderMonth(month time.Month, year int) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	days := daysInMonth(month, year)

	cells := make([]Cell, 0, gridCapacity)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}
	return cells
}

func daysInMonth(month time.Month, year int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Calendar tracks the invitee's candidate day and display timezone.
// It performs no availability or past-day validation on selection.
type Calendar struct {
	Month time.Month
	Year  int

	// SelectedDay is 1-31, or 0 when no day is selected.
	SelectedDay int

	Zones []Timezone
	Zone  Timezone
}

// NewCalendar returns a calendar showing now's month with the timezone
// catalog computed against now. The active timezone defaults to local.
func NewCalendar(now time.Time) *Calendar {
	zones := LoadTimezones(now)
	c := &Calendar{
		Month: now.Month(),
		Year:  now.Year(),
		Zones: zones,
	}
	local := now.Location().String()
	c.Zone = zones[0]
	for _, z := range zones {
		if z.ID == local {
			c.Zone = z
			break
		}
	}
	return c
}

// Grid returns the cell sequence for the displayed month.
func (c *Calendar) Grid() []Cell {
	return RenderMonth(c.Month, c.Year)
}

// SelectDay sets the active day. It does not validate that the day is in the
// future or inside any availability window.
func (c *Calendar) SelectDay(day int) bool {
	if day < 1 || day > daysInMonth(c.Month, c.Year) {
		return false
	}
	c.SelectedDay = day
	return true
}

// ChangeMonth moves the displayed month by delta (-1 or +1), wrapping the
// year at the boundaries. Any day selection is cleared: the same day index
// might not exist in the new month.
func (c *Calendar) ChangeMonth(delta int) {
	switch {
	case delta < 0 && c.Month == time.January:
		c.Month = time.December
		c.Year--
	case delta > 0 && c.Month == time.December:
		c.Month = time.January
		c.Year++
	case delta < 0:
		c.Month--
	case delta > 0:
		c.Month++
	default:
		return
	}
	c.SelectedDay = 0
}

// SelectZone replaces the active display timezone by catalog ID.
// Unknown IDs leave the active zone unchanged.
func (c *Calendar) SelectZone(id string) bool {
	for _, z := range c.Zones {
		if z.ID == id {
			c.Zone = z
			return true
		}
	}
	return false
}
