package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMonth(t *testing.T) {
	tests := []struct {
		name        string
		month       time.Month
		year        int
		wantLeading int
		wantDays    int
	}{
		{name: "may 2025 starts on thursday", month: time.May, year: 2025, wantLeading: 4, wantDays: 31},
		{name: "february 2025", month: time.February, year: 2025, wantLeading: 6, wantDays: 28},
		{name: "february 2024 leap year", month: time.February, year: 2024, wantLeading: 4, wantDays: 29},
		{name: "june 2025 starts on sunday", month: time.June, year: 2025, wantLeading: 0, wantDays: 30},
		{name: "december 2025", month: time.December, year: 2025, wantLeading: 1, wantDays: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := RenderMonth(tt.month, tt.year)
			require.Len(t, cells, tt.wantLeading+tt.wantDays)

			for i := 0; i < tt.wantLeading; i++ {
				assert.True(t, cells[i].Blank(), "cell %d should be blank", i)
			}
			for d := 1; d <= tt.wantDays; d++ {
				assert.Equal(t, d, cells[tt.wantLeading+d-1].Day)
			}
			// No trailing padding past the last day.
			assert.Equal(t, tt.wantDays, cells[len(cells)-1].Day)
		})
	}
}

func TestRenderMonthIsPure(t *testing.T) {
	a := RenderMonth(time.May, 2025)
	b := RenderMonth(time.May, 2025)
	assert.Equal(t, a, b)
}

func TestCalendarSelectDay(t *testing.T) {
	c := NewCalendar(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))

	assert.False(t, c.SelectDay(0))
	assert.False(t, c.SelectDay(32))
	assert.Equal(t, 0, c.SelectedDay)

	assert.True(t, c.SelectDay(15))
	assert.Equal(t, 15, c.SelectedDay)

	assert.True(t, c.SelectDay(31))
	assert.Equal(t, 31, c.SelectedDay)
}

func TestCalendarChangeMonth(t *testing.T) {
	tests := []struct {
		name      string
		month     time.Month
		year      int
		delta     int
		wantMonth time.Month
		wantYear  int
	}{
		{name: "forward", month: time.May, year: 2025, delta: 1, wantMonth: time.June, wantYear: 2025},
		{name: "backward", month: time.May, year: 2025, delta: -1, wantMonth: time.April, wantYear: 2025},
		{name: "december wraps forward", month: time.December, year: 2025, delta: 1, wantMonth: time.January, wantYear: 2026},
		{name: "january wraps backward", month: time.January, year: 2025, delta: -1, wantMonth: time.December, wantYear: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalendar(time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC))
			require.True(t, c.SelectDay(5))

			c.ChangeMonth(tt.delta)

			assert.Equal(t, tt.wantMonth, c.Month)
			assert.Equal(t, tt.wantYear, c.Year)
			assert.Equal(t, 0, c.SelectedDay, "changing month should clear the selection")
		})
	}
}

func TestCalendarChangeMonthZeroDelta(t *testing.T) {
	c := NewCalendar(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	c.SelectDay(10)

	c.ChangeMonth(0)

	assert.Equal(t, time.May, c.Month)
	assert.Equal(t, 10, c.SelectedDay)
}

func TestCalendarSelectZone(t *testing.T) {
	c := NewCalendar(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))

	require.True(t, c.SelectZone("Asia/Tokyo"))
	assert.Equal(t, "Asia/Tokyo", c.Zone.ID)

	assert.False(t, c.SelectZone("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Tokyo", c.Zone.ID, "unknown id should leave the zone unchanged")
}

func TestLoadTimezones(t *testing.T) {
	now := time.Date(2025, time.May, 15, 12, 0, 0, 0, time.UTC)
	zones := LoadTimezones(now)

	require.Len(t, zones, len(catalogZoneIDs))
	for _, z := range zones {
		assert.NotEmpty(t, z.ID)
		assert.NotEmpty(t, z.Label, "zone %s should always carry a label", z.ID)
	}

	byID := map[string]Timezone{}
	for _, z := range zones {
		byID[z.ID] = z
	}
	assert.Equal(t, "UTC+00:00", byID["UTC"].Offset)
	// Mid-May is DST in New York: UTC-4.
	assert.Equal(t, -240, byID["America/New_York"].OffsetMinutes)
	assert.Equal(t, "UTC-04:00", byID["America/New_York"].Offset)
	assert.Equal(t, 540, byID["Asia/Tokyo"].OffsetMinutes)
	assert.Equal(t, "Mexico City (UTC-06:00)", byID["America/Mexico_City"].Label)
}
