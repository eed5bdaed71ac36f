package booking

import (
	"context"

	"github.com/hairday/salon-booking/internal/audit"
	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/domain/schedule"
	"github.com/hairday/salon-booking/internal/httperr"
	"github.com/hairday/salon-booking/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Date      string
	StartTime timeutil.TimeOfDay
	EndTime   timeutil.TimeOfDay

	Name     string
	Phone    string
	Email    string
	Services []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	hours *schedule.Store
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	hours *schedule.Store,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		hours: hours,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*domain.Booking, error) {

	if rule := uc.hours.Resolve(in.Date); rule.Holiday {
		return nil, httperr.ErrBusiness("holiday")
	}

	b := &domain.Booking{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Services:  append([]string(nil), in.Services...),
	}

	// The repository re-checks the interval inside its critical section, so
	// two simultaneous requests cannot both claim the slot.
	if err := uc.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
