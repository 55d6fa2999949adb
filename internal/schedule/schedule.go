// Package schedule holds the pure time arithmetic behind interview
// scheduling. Persistence always recomputes the end instant from the
// start plus a chosen duration; a derived duration is only ever used
// for display and form pre-fill.
package schedule

import (
	"fmt"
	"math"
	"time"
)

// DurationOptions are the durations, in minutes, offered when
// scheduling an interview.
var DurationOptions = []int{30, 45, 60, 90, 120}

// DefaultDurationMinutes is pre-selected when nothing better is known.
const DefaultDurationMinutes = 60

// EndTime returns the end instant of an interview starting at start
// and lasting the given number of minutes.
func EndTime(start time.Time, minutes int) time.Time {
	return start.Add(time.Duration(minutes) * time.Minute)
}

// DurationMinutes returns the span between two instants rounded to
// whole minutes.
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// PrefillDuration returns the duration to pre-select when editing an
// existing interview: the derived span when it is one of the offered
// options, the default otherwise.
func PrefillDuration(start, end time.Time) int {
	derived := DurationMinutes(start, end)
	for _, option := range DurationOptions {
		if option == derived {
			return derived
		}
	}
	return DefaultDurationMinutes
}

// localLayout is the wall-clock form used while editing, precise to
// the minute.
const localLayout = "2006-01-02T15:04"

// FormatLocal renders an instant as a wall-clock string in loc.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(localLayout)
}

// ParseLocal converts a wall-clock string in loc back to a UTC
// instant. Round-tripping through FormatLocal is lossless to the
// minute for any timezone offset.
func ParseLocal(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(localLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local time %q: %w", s, err)
	}
	return t.UTC(), nil
}
