package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/httperr"
)

// ======================================================
// IN-MEMORY BOOKING REPOSITORY
// ======================================================

// BookingMemoryRepository holds all bookings in a process-local slice.
// Every write runs its conflict check and its commit under the same mutex,
// so two concurrent requests cannot both claim one slot. State is lost on
// restart.
type BookingMemoryRepository struct {
	mu    sync.Mutex
	items []domain.Booking
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{}
}

func (r *BookingMemoryRepository) Insert(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.StartTime >= b.EndTime {
		return httperr.ErrBusiness("invalid_time_range")
	}

	if domain.Overlaps(r.items, b.Date, b.StartTime, b.EndTime, "") {
		return httperr.ErrBusiness("slot_conflict")
	}

	b.ID = uuid.NewString()
	b.Status = domain.StatusBooked
	r.items = append(r.items, *b)
	return nil
}

func (r *BookingMemoryRepository) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	merged := r.items[idx]
	applyPatch(&merged, patch)

	if patch.TouchesInterval() {
		if merged.StartTime >= merged.EndTime {
			return nil, httperr.ErrBusiness("invalid_time_range")
		}
		if domain.Overlaps(r.items, merged.Date, merged.StartTime, merged.EndTime, id) {
			return nil, httperr.ErrBusiness("slot_conflict")
		}
	}

	r.items[idx] = merged

	out := merged
	out.Services = append([]string(nil), merged.Services...)
	return &out, nil
}

func (r *BookingMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return httperr.ErrBusiness("booking_not_found")
	}

	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return nil
}

func (r *BookingMemoryRepository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	out := r.items[idx]
	out.Services = append([]string(nil), out.Services...)
	return &out, nil
}

func (r *BookingMemoryRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Booking, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *BookingMemoryRepository) ListByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Booking{}
	for _, b := range r.items {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

func (r *BookingMemoryRepository) indexOf(id string) int {
	for i, b := range r.items {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(b *domain.Booking, patch domain.Patch) {
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.StartTime != nil {
		b.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		b.EndTime = *patch.EndTime
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	if patch.Phone != nil {
		b.Phone = *patch.Phone
	}
	if patch.Email != nil {
		b.Email = *patch.Email
	}
	if patch.Services != nil {
		b.Services = append([]string(nil), patch.Services...)
	}
}
