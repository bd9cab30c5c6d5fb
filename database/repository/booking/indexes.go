// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One confirmed booking per window; cancelled rows fall out of the index.
		{
			Keys: bson.D{
				{Key: "resourceId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "serviceName", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}).
				SetName("active_window_unique"),
		},
		{
			Keys:    bson.D{{Key: "bookedBy", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("booker_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
