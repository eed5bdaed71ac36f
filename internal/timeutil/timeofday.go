package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a minute-of-day value (0–1439) parsed from an "HH:MM" string.
// Store hours and slot boundaries are compared as plain integers.
type TimeOfDay int

const MinutesPerDay = 24 * 60

var ErrFormat = errors.New("invalid time, expected HH:MM")

func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrFormat
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrFormat
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrFormat
	}

	return TimeOfDay(hour*60 + minute), nil
}

func (t TimeOfDay) Format() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Add shifts t by d minutes. The result is not wrapped at midnight; callers
// compare against the closing time to detect day overflow.
func (t TimeOfDay) Add(d int) TimeOfDay {
	return t + TimeOfDay(d)
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

func (t TimeOfDay) After(u TimeOfDay) bool { return t > u }

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format())), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrFormat
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
