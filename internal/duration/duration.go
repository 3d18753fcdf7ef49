// Package duration renders second counts as short human-readable phrases
// such as "4 years, 3 months, 18 days".
//
// Months are 30 days and years are 12 months. This is an approximation of
// the calendar and is kept as-is so outputs stay stable.
package duration

import (
	"strconv"
	"strings"
)

// Unit lengths in seconds.
const (
	Minute uint64 = 60
	Hour          = 60 * Minute
	Day           = 24 * Hour
	Month         = 30 * Day
	Year          = 12 * Month
)

// Bounds for the number of units Format emits.
const (
	MinUnits     = 1
	MaxUnits     = 6
	DefaultUnits = MaxUnits
)

var unitNames = [MaxUnits]string{"year", "month", "day", "hour", "minute", "second"}

// Decompose splits seconds into years, months, days, hours, minutes and
// seconds, largest unit first.
func Decompose(seconds uint64) [MaxUnits]uint64 {
	var parts [MaxUnits]uint64
	remaining := seconds
	for i, size := range [...]uint64{Year, Month, Day, Hour, Minute} {
		parts[i] = remaining / size
		remaining %= size
	}
	parts[MaxUnits-1] = remaining
	return parts
}

// ClampUnits limits n to [MinUnits, MaxUnits].
func ClampUnits(n int) int {
	return min(max(n, MinUnits), MaxUnits)
}

// Format renders seconds using at most maxUnits non-zero units, joined by
// ", ". maxUnits outside [1,6] is clamped. Zero seconds renders as the empty
// string: no "0 seconds" segment is emitted.
func Format(seconds uint64, maxUnits int) string {
	limit := ClampUnits(maxUnits)

	segments := make([]string, 0, limit)
	for i, value := range Decompose(seconds) {
		if value == 0 {
			continue
		}
		if len(segments) == limit {
			break
		}
		segments = append(segments, segment(value, unitNames[i]))
	}
	return strings.Join(segments, ", ")
}

func segment(value uint64, unit string) string {
	s := strconv.FormatUint(value, 10) + " " + unit
	if value != 1 {
		s += "s"
	}
	return s
}
