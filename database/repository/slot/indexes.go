// FILE: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the declared_slots collection.
func (r *mongoSlotRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// primary query pattern
		{
			Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "isRecurring", Value: 1}},
			Options: options.Index().SetName("resource_recurring_idx"),
		},
		{
			Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "specificDate", Value: 1}},
			Options: options.Index().SetName("resource_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
