package availability

import (
	"clubbook/models"
)

// Annotate marks each window booked when a non-cancelled booking of resourceID on
// date matches its start time and service exactly. The input is not modified.
func Annotate(windows []models.BookableWindow, bookings []models.Booking, date, resourceID string) []models.BookableWindow {
	taken := make(map[models.BookingKey]struct{}, len(bookings))
	for _, b := range bookings {
		if !b.Active() || b.Date != date || b.ResourceID != resourceID {
			continue
		}
		taken[b.Key()] = struct{}{}
	}

	out := make([]models.BookableWindow, len(windows))
	for i, w := range windows {
		_, booked := taken[w.Key(resourceID)]
		w.IsBooked = booked
		out[i] = w
	}
	return out
}
