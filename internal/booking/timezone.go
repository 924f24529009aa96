package booking

import (
	"fmt"
	"strings"
	"time"
)

// Timezone is one entry of the display timezone catalog.
type Timezone struct {
	ID            string `json:"id"`    // IANA name
	Label         string `json:"label"` // human label with offset, or an error marker
	Offset        string `json:"offset"`
	OffsetMinutes int    `json:"utc_offset_minutes"`
}

// catalogZoneIDs is the fixed set of common zones offered to invitees.
var catalogZoneIDs = []string{
	"UTC",
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/Bogota",
	"America/Argentina/Buenos_Aires",
	"America/Sao_Paulo",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Australia/Sydney",
}

// LoadTimezones computes the timezone catalog against now. A load or offset
// failure for a single zone yields an entry labelled "error" instead of
// aborting the whole list, so every entry always has a non-empty label.
func LoadTimezones(now time.Time) []Timezone {
	zones := make([]Timezone, 0, len(catalogZoneIDs))
	for _, id := range catalogZoneIDs {
		loc, err := time.LoadLocation(id)
		if err != nil {
			zones = append(zones, Timezone{ID: id, Label: id + " (error)"})
			continue
		}
		_, offsetSec := now.In(loc).Zone()
		minutes := offsetSec / 60
		zones = append(zones, Timezone{
			ID:            id,
			Label:         fmt.Sprintf("%s (%s)", zoneCity(id), formatOffset(minutes)),
			Offset:        formatOffset(minutes),
			OffsetMinutes: minutes,
		})
	}
	return zones
}

// zoneCity returns the city part of an IANA name with underscores expanded,
// e.g. "America/Mexico_City" -> "Mexico City".
func zoneCity(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	return strings.ReplaceAll(id, "_", " ")
}

func formatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}
