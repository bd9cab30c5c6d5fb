package booking

import (
	"context"
	"errors"
	"fmt"

	"clubbook/models"
	"clubbook/services/availability"
	"clubbook/services/tasks"

	"go.uber.org/zap"
)

// CreateBooking books the window req names for bookedBy. The window must be
// currently offered; the repository insert re-checks the exact
// (resource, date, start, service) tuple so a second writer gets
// models.ErrSlotAlreadyBooked.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, resourceID, bookedBy string, req models.CreateBookingRequest) (*models.Booking, error) {
	logger := s.logger()

	day, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	date := models.FormatDate(day)
	if req.ServiceName == "" {
		return nil, models.InvalidService("service name is required")
	}

	snap, err := s.Schedule.Snapshot(ctx, resourceID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	window, offered, err := availability.Offers(snap, models.BookableWindow{
		Date:      date,
		StartTime: req.StartTime,
		Service:   req.ServiceName,
	})
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, fmt.Errorf("%w: %s at %s on %s", models.ErrWindowNotOffered, req.ServiceName, req.StartTime, date)
	}
	if availability.Started(window, s.localNow()) {
		return nil, fmt.Errorf("%w: %s on %s has already started", models.ErrWindowNotOffered, req.StartTime, date)
	}

	key := window.Key(resourceID)
	if s.Locker != nil {
		release, err := s.Locker.Acquire(ctx, key, s.LockTTL)
		if errors.Is(err, ErrLockHeld) {
			return nil, models.ErrSlotAlreadyBooked
		}
		if err != nil {
			// the insert below still guards the tuple
			logger.Warn("Booking lock unavailable", zap.Error(err))
		} else {
			defer release()
		}
	}

	booking := models.Booking{
		ID:          s.newID(),
		ResourceID:  resourceID,
		BookedBy:    bookedBy,
		Date:        date,
		StartTime:   window.StartTime,
		EndTime:     window.EndTime,
		ServiceName: window.Service,
		Status:      models.BookingStatusConfirmed,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, models.ErrSlotAlreadyBooked) {
			logger.Info("Booking lost the race for its window",
				zap.String("resourceID", resourceID), zap.String("date", date),
				zap.String("start", window.StartTime.String()), zap.String("service", window.Service))
		}
		return nil, err
	}

	logger.Info("Booking confirmed",
		zap.String("bookingID", booking.ID), zap.String("resourceID", resourceID),
		zap.String("date", date), zap.String("start", booking.StartTime.String()))
	s.enqueueNotifications(ctx, booking)
	return &booking, nil
}

// enqueueNotifications schedules the confirmation and the reminder. Failures
// are logged; the booking itself already stands.
func (s *DefaultBookingService) enqueueNotifications(ctx context.Context, b models.Booking) {
	if s.Queue == nil {
		return
	}
	logger := s.logger()

	task, opts, err := tasks.NewBookingConfirmedTask(b)
	if err == nil {
		_, err = s.Queue.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		logger.Error("Failed to enqueue booking confirmation", zap.String("bookingID", b.ID), zap.Error(err))
	}

	day, err := models.ParseDate(b.Date)
	if err != nil {
		return
	}
	fireAt := b.StartTime.On(day, s.localNow().Location()).Add(-s.ReminderLead)
	if !fireAt.After(s.now()) {
		return
	}
	task, opts, err = tasks.NewBookingReminderTask(b, fireAt)
	if err == nil {
		_, err = s.Queue.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		logger.Error("Failed to schedule booking reminder", zap.String("bookingID", b.ID), zap.Error(err))
	}
}
