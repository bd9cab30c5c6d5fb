// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoSlotRepo) ListByResource(ctx context.Context, resourceID string) ([]models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"resourceId": resourceID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.SlotRecord
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

// ListLegacy returns slots written before isRecurring/specificDate existed.
func (r *mongoSlotRepo) ListLegacy(ctx context.Context) ([]models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{
		"isRecurring":  bson.M{"$ne": true},
		"specificDate": bson.M{"$in": bson.A{nil, ""}},
		"dayOfWeek":    bson.M{"$exists": true, "$ne": nil},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch legacy slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.SlotRecord
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding legacy slots: %w", err)
	}
	return slots, nil
}
