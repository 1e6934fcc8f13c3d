// Package timegrid defines the half-hour addressing scheme over the extended
// planning day: hours 6.0-23.5 are today (06:00-23:30), hours 24.0-29.5 are
// the following night (00:00-05:30), and the grid wraps at 30.0.
package timegrid

import (
	"fmt"
	"math"
)

const (
	// DayStart is the first valid start hour on the grid (06:00).
	DayStart = 6.0
	// DayEnd is the exclusive upper bound for start hours (06:00 next day).
	DayEnd = 30.0
	// Midnight is the internal hour at which the clock wraps to 00:00.
	Midnight = 24.0
)

// RoundToHalfHour snaps an hour value to the nearest half-hour slot.
func RoundToHalfHour(hour float64) float64 {
	return math.Round(hour*2) / 2
}

// InBounds reports whether h is a valid start hour on the grid.
func InBounds(h float64) bool {
	return h >= DayStart && h < DayEnd
}

// FormatHour renders an internal grid hour as wall-clock HH:MM. Hours at or
// past 24.0 wrap to the next day's clock time.
func FormatHour(hour float64) string {
	display := hour
	if display >= Midnight {
		display -= Midnight
	}
	h := int(math.Floor(display))
	m := int(math.Round((display - math.Floor(display)) * 60))
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Slot is one half-hour row of the extended day, for rendering layers.
type Slot struct {
	Hour       float64
	Label      string
	IsHalf     bool
	IsMidnight bool
	IsNight    bool
}

// Slots returns the full 06:00-to-06:00 slot table.
func Slots() []Slot {
	var slots []Slot

	// Day hours: 06:00 - 23:30
	for i := 6; i < 24; i++ {
		slots = append(slots, Slot{Hour: float64(i), Label: fmt.Sprintf("%02d", i)})
		slots = append(slots, Slot{Hour: float64(i) + 0.5, IsHalf: true})
	}

	// Night hours after midnight: 00:00 - 06:00 (hour 24-30 internally)
	for i := 0; i <= 6; i++ {
		internal := Midnight + float64(i)
		slots = append(slots, Slot{
			Hour:       internal,
			Label:      fmt.Sprintf("%02d", i),
			IsMidnight: i == 0,
			IsNight:    i > 0,
		})
		if i < 6 {
			slots = append(slots, Slot{Hour: internal + 0.5, IsHalf: true, IsNight: true})
		}
	}

	return slots
}
