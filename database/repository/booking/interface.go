// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"clubbook/database"
	"clubbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository stores bookings. Insert is the authoritative conflict point:
// it fails with models.ErrSlotAlreadyBooked when an active booking already holds
// the same (resourceId, date, startTime, serviceName) tuple.
type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindActive(ctx context.Context, key models.BookingKey) (*models.Booking, error)
	ListByResourceAndRange(ctx context.Context, resourceID, fromDate, toDate string) ([]models.Booking, error)
	ListByBooker(ctx context.Context, bookedBy string) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID string, at time.Time) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Database().Collection("bookings"),
	}
}
