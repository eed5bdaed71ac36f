package booking

import "github.com/hairday/salon-booking/internal/timeutil"

const StatusBooked = "booked"

// Booking is a committed appointment. Availability is never stored; it is
// computed against the live booking list.
type Booking struct {
	ID string `json:"id"`

	Date      string             `json:"date"` // YYYY-MM-DD
	StartTime timeutil.TimeOfDay `json:"start_time"`
	EndTime   timeutil.TimeOfDay `json:"end_time"`

	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Services []string `json:"services"`

	Status string `json:"status"`
}

// Patch is a partial booking update. Nil fields are retained as-is;
// a nil Services slice keeps the existing services.
type Patch struct {
	Date      *string
	StartTime *timeutil.TimeOfDay
	EndTime   *timeutil.TimeOfDay
	Name      *string
	Phone     *string
	Email     *string
	Services  []string
}

// TouchesInterval reports whether applying the patch can move the booking on
// the calendar, which forces a fresh conflict check.
func (p Patch) TouchesInterval() bool {
	return p.Date != nil || p.StartTime != nil || p.EndTime != nil
}
