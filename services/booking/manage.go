package booking

import (
	"context"
	"errors"

	"clubbook/models"

	"go.uber.org/zap"
)

// CancelBooking frees the booking's window. Only the booking party or the
// booked resource may cancel. Cancelling twice returns the cancelled booking.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actorID != b.BookedBy && actorID != b.ResourceID {
		return nil, models.ErrForbidden
	}
	if !b.Active() {
		return b, nil
	}

	at := s.now().UTC()
	if err := s.Repo.Cancel(ctx, bookingID, at); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		// a concurrent cancel got there first
		current, getErr := s.Repo.GetByID(ctx, bookingID)
		if getErr != nil || current.Active() {
			return nil, err
		}
		return current, nil
	}
	b.Status = models.BookingStatusCancelled
	b.CancelledAt = &at

	s.logger().Info("Booking cancelled", zap.String("bookingID", bookingID), zap.String("by", actorID))
	return b, nil
}

func (s *DefaultBookingService) ListResourceBookings(ctx context.Context, resourceID, fromDate, toDate string) ([]models.Booking, error) {
	from, err := models.ParseDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := models.ParseDate(toDate)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, models.InvalidDate("range end %s is before start %s", toDate, fromDate)
	}
	return s.Repo.ListByResourceAndRange(ctx, resourceID, models.FormatDate(from), models.FormatDate(to))
}

func (s *DefaultBookingService) ListMyBookings(ctx context.Context, bookedBy string) ([]models.Booking, error) {
	return s.Repo.ListByBooker(ctx, bookedBy)
}
