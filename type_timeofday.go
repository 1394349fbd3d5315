package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay represents a clock time with minute granularity, as found in
// broker exports ("09:04", "17:36"). It exists to establish chronological
// order between trades of the same day.
type TimeOfDay struct {
	h int
	m int
}

// NewTimeOfDay returns a TimeOfDay for the given hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay { return TimeOfDay{h: hour, m: minute} }

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(str string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(str), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", str)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in time of day %q", str)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in time of day %q", str)
	}
	return TimeOfDay{h: h, m: m}, nil
}

// Hour returns the hour of the day.
func (t TimeOfDay) Hour() int { return t.h }

// Minute returns the minute of the hour.
func (t TimeOfDay) Minute() int { return t.m }

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.h, t.m) }

// Compare returns -1, 0 or +1 as t sorts before, equal to, or after x.
func (t TimeOfDay) Compare(x TimeOfDay) int {
	if c := t.h - x.h; c != 0 {
		return sign(c)
	}
	return sign(t.m - x.m)
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return +1
	default:
		return 0
	}
}
