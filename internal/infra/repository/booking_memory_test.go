package repository

import (
	"context"
	"testing"

	domain "github.com/hairday/salon-booking/internal/domain/booking"
	"github.com/hairday/salon-booking/internal/httperr"
	"github.com/hairday/salon-booking/internal/timeutil"
)

func tod(t *testing.T, s string) timeutil.TimeOfDay {
	t.Helper()
	v, err := timeutil.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func newBooking(t *testing.T, date, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		Date:      date,
		StartTime: tod(t, start),
		EndTime:   tod(t, end),
		Name:      "Ada",
		Phone:     "555-0100",
		Email:     "ada@example.com",
		Services:  []string{"Haircut"},
	}
}

func TestInsert_AssignsIdentityAndStatus(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if b.ID == "" {
		t.Fatal("Insert did not assign an id")
	}
	if b.Status != domain.StatusBooked {
		t.Fatalf("status = %q, want %q", b.Status, domain.StatusBooked)
	}

	got, err := repo.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Date != b.Date || got.StartTime != b.StartTime || got.EndTime != b.EndTime ||
		got.Name != b.Name || got.Phone != b.Phone || got.Email != b.Email {
		t.Fatalf("Get returned %+v, want %+v", got, b)
	}
}

func TestInsert_RejectsOverlap(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking(t, "2024-06-01", "10:00", "10:30")); err != nil {
		t.Fatalf("first insert: %v", err)
	}

	err := repo.Insert(ctx, newBooking(t, "2024-06-01", "10:15", "10:45"))
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 1 {
		t.Fatalf("rejected insert mutated the store, %d items", len(items))
	}

	// The same interval on another date is fine.
	if err := repo.Insert(ctx, newBooking(t, "2024-06-02", "10:00", "10:30")); err != nil {
		t.Fatalf("other-date insert: %v", err)
	}
}

func TestInsert_RejectsInvertedInterval(t *testing.T) {
	repo := NewBookingMemoryRepository()

	err := repo.Insert(context.Background(), newBooking(t, "2024-06-01", "11:00", "10:00"))
	if !httperr.IsBusiness(err, "invalid_time_range") {
		t.Fatalf("expected invalid_time_range, got %v", err)
	}
}

func TestAcceptedBookingsNeverIntersect(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	attempts := [][2]string{
		{"09:00", "09:30"},
		{"09:15", "09:45"},
		{"09:30", "10:30"},
		{"10:00", "10:30"},
		{"10:15", "11:15"},
		{"10:30", "11:00"},
	}
	for _, a := range attempts {
		_ = repo.Insert(ctx, newBooking(t, "2024-06-01", a[0], a[1]))
	}

	items, _ := repo.List(ctx)
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if a.StartTime < b.EndTime && b.StartTime < a.EndTime {
				t.Fatalf("stored bookings intersect: %s-%s and %s-%s",
					a.StartTime.Format(), a.EndTime.Format(),
					b.StartTime.Format(), b.EndTime.Format())
			}
		}
	}
}

func TestUpdate_MergesPatch(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	name := "Grace"
	got, err := repo.Update(ctx, b.ID, domain.Patch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Grace" {
		t.Fatalf("name = %q, want Grace", got.Name)
	}
	if got.Phone != "555-0100" || got.StartTime != b.StartTime {
		t.Fatal("unpatched fields were not retained")
	}
}

func TestUpdate_ConflictLeavesOriginal(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	c := newBooking(t, "2024-06-01", "11:00", "11:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("insert b: %v", err)
	}
	if err := repo.Insert(ctx, c); err != nil {
		t.Fatalf("insert c: %v", err)
	}

	// Move b onto c.
	start := tod(t, "11:00")
	end := tod(t, "11:30")
	_, err := repo.Update(ctx, b.ID, domain.Patch{StartTime: &start, EndTime: &end})
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	got, _ := repo.Get(ctx, b.ID)
	if got.StartTime.Format() != "10:00" || got.EndTime.Format() != "10:30" {
		t.Fatalf("failed update mutated booking to %s-%s",
			got.StartTime.Format(), got.EndTime.Format())
	}
}

func TestUpdate_SelfOverlapAllowed(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// Shift by 15 minutes; the new interval overlaps only the old self.
	start := tod(t, "10:15")
	end := tod(t, "10:45")
	if _, err := repo.Update(ctx, b.ID, domain.Patch{StartTime: &start, EndTime: &end}); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := NewBookingMemoryRepository()

	_, err := repo.Update(context.Background(), "missing", domain.Patch{})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, b.ID); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}

	items, _ := repo.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected empty store, got %d items", len(items))
	}
}

func TestList_ReturnsSnapshotCopy(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	b := newBooking(t, "2024-06-01", "10:00", "10:30")
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	items, _ := repo.List(ctx)
	items[0].Name = "mutated"

	got, _ := repo.Get(ctx, b.ID)
	if got.Name != "Ada" {
		t.Fatal("mutating the snapshot changed store state")
	}
}

func TestListByDate(t *testing.T) {
	repo := NewBookingMemoryRepository()
	ctx := context.Background()

	if err := repo.Insert(ctx, newBooking(t, "2024-06-01", "10:00", "10:30")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(ctx, newBooking(t, "2024-06-02", "10:00", "10:30")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	items, _ := repo.ListByDate(ctx, "2024-06-01")
	if len(items) != 1 || items[0].Date != "2024-06-01" {
		t.Fatalf("ListByDate returned %d items", len(items))
	}
}
