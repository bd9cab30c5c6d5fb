package cron

import (
	"context"

	"clubbook/models"

	"go.uber.org/zap"
)

// Notifier delivers booking notifications to the booking party and the resource.
type Notifier interface {
	BookingConfirmed(ctx context.Context, p models.BookingNotificationPayload) error
	BookingReminder(ctx context.Context, p models.BookingNotificationPayload) error
}

// LogNotifier writes notifications to the log. Delivery channels plug in by
// implementing Notifier.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) BookingConfirmed(_ context.Context, p models.BookingNotificationPayload) error {
	n.Logger.Info("Booking confirmed notification",
		zap.String("bookingID", p.BookingID), zap.String("resourceID", p.ResourceID),
		zap.String("bookedBy", p.BookedBy), zap.String("date", p.Date), zap.String("start", p.StartTime))
	return nil
}

func (n LogNotifier) BookingReminder(_ context.Context, p models.BookingNotificationPayload) error {
	n.Logger.Info("Booking reminder notification",
		zap.String("bookingID", p.BookingID), zap.String("bookedBy", p.BookedBy),
		zap.String("date", p.Date), zap.String("start", p.StartTime), zap.String("service", p.ServiceName))
	return nil
}
