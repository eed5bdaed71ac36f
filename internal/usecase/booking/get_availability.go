package booking

import (
	"context"

	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/domain/schedule"
)

type GetAvailability struct {
	repo  domain.Repository
	hours *schedule.Store
}

func NewGetAvailability(
	repo domain.Repository,
	hours *schedule.Store,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		hours: hours,
	}
}

// Execute returns the free duration-sized windows for the date. Holidays
// yield an empty list, not an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	durationMin int,
) ([]domain.TimeSlot, error) {

	rule := uc.hours.Resolve(date)
	if rule.Holiday {
		return []domain.TimeSlot{}, nil
	}

	existing, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.GenerateSlots(rule.Open, rule.Close, durationMin, existing, date), nil
}
