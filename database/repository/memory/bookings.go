package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"clubbook/models"
)

// BookingRepo checks and inserts under one lock, mirroring the unique index of
// the mongo implementation.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingRepo(seed ...models.Booking) *BookingRepo {
	return &BookingRepo{bookings: append([]models.Booking(nil), seed...)}
}

func (r *BookingRepo) Insert(_ context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findActive(booking.Key()) != nil {
		return models.ErrSlotAlreadyBooked
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *BookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == bookingID {
			return &b, nil
		}
	}
	return nil, models.NotFound("booking %s not found", bookingID)
}

func (r *BookingRepo) FindActive(_ context.Context, key models.BookingKey) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findActive(key), nil
}

func (r *BookingRepo) findActive(key models.BookingKey) *models.Booking {
	for _, b := range r.bookings {
		if b.Active() && b.Key() == key {
			return &b
		}
	}
	return nil
}

func (r *BookingRepo) ListByResourceAndRange(_ context.Context, resourceID, fromDate, toDate string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.ResourceID == resourceID && b.Date >= fromDate && b.Date <= toDate
	}), nil
}

func (r *BookingRepo) ListByBooker(_ context.Context, bookedBy string) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.BookedBy == bookedBy }), nil
}

func (r *BookingRepo) filter(keep func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (r *BookingRepo) Cancel(_ context.Context, bookingID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.bookings {
		if b.ID == bookingID && b.Status == models.BookingStatusConfirmed {
			r.bookings[i].Status = models.BookingStatusCancelled
			r.bookings[i].CancelledAt = &at
			return nil
		}
	}
	return models.NotFound("no confirmed booking %s", bookingID)
}

func (r *BookingRepo) EnsureIndexes(context.Context) error { return nil }
