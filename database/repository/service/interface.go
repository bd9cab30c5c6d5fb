// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"clubbook/database"
	"clubbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository stores each resource's service catalogue.
type ServiceRepository interface {
	List(ctx context.Context, resourceID string) ([]models.Service, error)
	Upsert(ctx context.Context, svc models.Service) error
	Delete(ctx context.Context, resourceID, name string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.Database().Collection("services"),
	}
}
