// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"clubbook/database"
	"clubbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository stores declared slots per resource.
type SlotRepository interface {
	ListByResource(ctx context.Context, resourceID string) ([]models.SlotRecord, error)
	GetByID(ctx context.Context, resourceID, slotID string) (*models.SlotRecord, error)
	Upsert(ctx context.Context, slot models.SlotRecord) error
	Delete(ctx context.Context, resourceID, slotID string) error
	MarkRecurring(ctx context.Context, resourceID string, slotIDs []string) error
	ListLegacy(ctx context.Context) ([]models.SlotRecord, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.Database().Collection("declared_slots"),
	}
}
