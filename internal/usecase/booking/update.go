package booking

import (
	"context"

	"github.com/hairday/salon-booking/internal/audit"
	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/domain/schedule"
	"github.com/hairday/salon-booking/internal/httperr"
)

type UpdateBooking struct {
	repo  domain.Repository
	hours *schedule.Store
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	hours *schedule.Store,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		hours: hours,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*domain.Booking, error) {

	if patch.Date != nil {
		if rule := uc.hours.Resolve(*patch.Date); rule.Holiday {
			return nil, httperr.ErrBusiness("holiday")
		}
	}

	b, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
