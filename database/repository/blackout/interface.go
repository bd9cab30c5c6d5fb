// File: database/repository/blackout/interface.go
package blackoutRepo

import (
	"context"

	"clubbook/database"
	"clubbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlackoutRepository stores blackout dates per resource.
type BlackoutRepository interface {
	List(ctx context.Context, resourceID string) ([]models.BlackoutDate, error)
	Add(ctx context.Context, blackout models.BlackoutDate) error
	Remove(ctx context.Context, resourceID, date string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBlackoutRepo struct {
	coll *mongo.Collection
}

func NewMongoBlackoutRepo() BlackoutRepository {
	return &mongoBlackoutRepo{
		coll: database.Database().Collection("blackout_dates"),
	}
}
