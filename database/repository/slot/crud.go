// File: database/repository/slot/crud.go
package slotRepo

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

func (r *mongoSlotRepo) GetByID(ctx context.Context, resourceID, slotID string) (*models.SlotRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.SlotRecord
	err := r.coll.FindOne(ctx, bson.M{"resourceId": resourceID, "id": slotID}).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.NotFound("slot %s not found", slotID)
	}
	if err != nil {
		return nil, fmt.Errorf("find slot: %w", err)
	}
	return &slot, nil
}

// Upsert replaces the slot with the same id, inserting it when absent.
func (r *mongoSlotRepo) Upsert(ctx context.Context, slot models.SlotRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"resourceId": slot.ResourceID, "id": slot.ID}
	_, err := r.coll.ReplaceOne(ctx, filter, slot, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// the id belongs to another resource
		return models.NotFound("slot %s not found", slot.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot.ID, err)
	}
	return nil
}

func (r *mongoSlotRepo) Delete(ctx context.Context, resourceID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"resourceId": resourceID, "id": slotID})
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slotID, err)
	}
	if res.DeletedCount == 0 {
		return models.NotFound("slot %s not found", slotID)
	}
	return nil
}

// MarkRecurring stamps isRecurring on migrated legacy slots.
func (r *mongoSlotRepo) MarkRecurring(ctx context.Context, resourceID string, slotIDs []string) error {
	if len(slotIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"resourceId": resourceID, "id": bson.M{"$in": slotIDs}}
	update := bson.M{"$set": bson.M{"isRecurring": true}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark slots recurring: %w", err)
	}
	return nil
}
