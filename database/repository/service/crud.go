// File: database/repository/service/crud.go
package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"clubbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoServiceRepo) List(ctx context.Context, resourceID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"resourceId": resourceID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Service
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return out, nil
}

func (r *mongoServiceRepo) Upsert(ctx context.Context, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"resourceId": svc.ResourceID, "name": svc.Name}
	if _, err := r.coll.ReplaceOne(ctx, filter, svc, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to write service %q: %w", svc.Name, err)
	}
	return nil
}

func (r *mongoServiceRepo) Delete(ctx context.Context, resourceID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"resourceId": resourceID, "name": name})
	if err != nil {
		return fmt.Errorf("failed to delete service %q: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return models.NotFound("service %q not found", name)
	}
	return nil
}

func (r *mongoServiceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "resourceId", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("resource_name_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
