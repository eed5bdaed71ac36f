package booking

import "github.com/hairday/salon-booking/internal/timeutil"

type TimeSlot struct {
	StartTime timeutil.TimeOfDay `json:"start_time"`
	EndTime   timeutil.TimeOfDay `json:"end_time"`
}

// GenerateSlots enumerates duration-sized windows back to back from the
// opening time. Enumeration stops at the first window that would run past
// closing; a window colliding with an existing booking is skipped without
// shifting the later window boundaries.
func GenerateSlots(open, close timeutil.TimeOfDay, durationMin int, existing []Booking, date string) []TimeSlot {
	slots := []TimeSlot{}
	if durationMin <= 0 {
		return slots
	}

	for cur := open; cur.Before(close); cur = cur.Add(durationMin) {
		end := cur.Add(durationMin)
		if end.After(close) {
			break
		}

		if !Overlaps(existing, date, cur, end, "") {
			slots = append(slots, TimeSlot{StartTime: cur, EndTime: end})
		}
	}

	return slots
}
