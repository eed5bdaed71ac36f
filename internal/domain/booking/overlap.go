package booking

import "github.com/hairday/salon-booking/internal/timeutil"

// Overlaps reports whether the half-open interval [start,end) collides with
// any existing booking on the given date. The booking with excludeID is
// ignored so edits do not conflict with themselves; pass "" to exclude
// nothing.
//
// Two half-open intervals intersect iff start < b.End && end > b.Start.
// This is the single conflict predicate for slot generation, inserts and
// updates.
func Overlaps(existing []Booking, date string, start, end timeutil.TimeOfDay, excludeID string) bool {
	for _, b := range existing {
		if b.Date != date {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if start < b.EndTime && end > b.StartTime {
			return true
		}
	}
	return false
}
