// File: database/repository/blackout/crud.go
package blackoutRepo

import (
	"context"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBlackoutRepo) List(ctx context.Context, resourceID string) ([]models.BlackoutDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"resourceId": resourceID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackout dates: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.BlackoutDate
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding blackout dates: %w", err)
	}
	return out, nil
}

// Add records a blackout; adding an existing date only refreshes its reason.
func (r *mongoBlackoutRepo) Add(ctx context.Context, blackout models.BlackoutDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"resourceId": blackout.ResourceID, "date": blackout.Date}
	update := bson.M{
		"$set":         bson.M{"reason": blackout.Reason},
		"$setOnInsert": bson.M{"createdAt": blackout.CreatedAt},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to add blackout %s: %w", blackout.Date, err)
	}
	return nil
}

func (r *mongoBlackoutRepo) Remove(ctx context.Context, resourceID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"resourceId": resourceID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to remove blackout %s: %w", date, err)
	}
	if res.DeletedCount == 0 {
		return models.NotFound("no blackout on %s", date)
	}
	return nil
}

func (r *mongoBlackoutRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("resource_date_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create blackout indexes: %w", err)
	}
	return nil
}
