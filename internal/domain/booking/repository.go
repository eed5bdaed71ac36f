package booking

import "context"

type Repository interface {
	// Insert commits the booking if its interval is free on that date,
	// assigning a fresh id. The conflict check and the append happen in the
	// same critical section.
	Insert(ctx context.Context, b *Booking) error

	// Update merges the patch into the stored booking, re-running the
	// conflict check (excluding the booking itself) whenever the patch can
	// move it on the calendar.
	Update(ctx context.Context, id string, patch Patch) (*Booking, error)

	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (*Booking, error)

	// List returns a snapshot copy; callers may not reach store internals.
	List(ctx context.Context) ([]Booking, error)

	ListByDate(ctx context.Context, date string) ([]Booking, error)
}
