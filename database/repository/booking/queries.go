// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindActive returns the confirmed booking holding key, or nil.
func (r *mongoBookingRepo) FindActive(ctx context.Context, key models.BookingKey) (*models.Booking, error) {
	filter := bson.M{
		"resourceId":  key.ResourceID,
		"date":        key.Date,
		"startTime":   key.StartTime,
		"serviceName": key.ServiceName,
		"status":      models.BookingStatusConfirmed,
	}
	var b models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active booking: %w", err)
	}
	return &b, nil
}

// ListByResourceAndRange returns bookings of any status with fromDate <= date <= toDate.
func (r *mongoBookingRepo) ListByResourceAndRange(ctx context.Context, resourceID, fromDate, toDate string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"resourceId": resourceID,
		"date":       bson.M{"$gte": fromDate, "$lte": toDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *mongoBookingRepo) ListByBooker(ctx context.Context, bookedBy string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	return r.find(ctx, bson.M{"bookedBy": bookedBy}, opts)
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Booking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return out, nil
}
