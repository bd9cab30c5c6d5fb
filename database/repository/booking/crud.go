// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Explicit re-check; the unique partial index settles any race past it.
	if existing, err := r.FindActive(ctx, booking.Key()); err != nil {
		return err
	} else if existing != nil {
		return models.ErrSlotAlreadyBooked
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrSlotAlreadyBooked
		}
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.NotFound("booking %s not found", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{
		"status":      models.BookingStatusCancelled,
		"cancelledAt": at,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.NotFound("no confirmed booking %s", bookingID)
	}
	return nil
}
