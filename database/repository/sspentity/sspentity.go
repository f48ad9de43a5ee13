package sspEntityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crmsections/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SspEntityRepository exposes the portal (SSP) column access settings.
type SspEntityRepository interface {
	// GetSspColumnAccessList returns the ids of the entity columns visible to
	// portal users. An entity without settings has no visible columns.
	GetSspColumnAccessList(ctx context.Context, entityUId string) ([]string, error)
}

// MongoSspEntityRepo implements SspEntityRepository using MongoDB.
type MongoSspEntityRepo struct {
	coll *mongo.Collection
}

func NewMongoSspEntityRepo(db *mongo.Database) SspEntityRepository {
	return &MongoSspEntityRepo{coll: db.Collection("ssp_column_access")}
}

func (r *MongoSspEntityRepo) GetSspColumnAccessList(ctx context.Context, entityUId string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var access models.SspColumnAccess
	if err := r.coll.FindOne(ctx, bson.M{"entity_uid": entityUId}).Decode(&access); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to fetch ssp column access for %s: %w", entityUId, err)
	}
	if access.ColumnIDs == nil {
		return []string{}, nil
	}
	return access.ColumnIDs, nil
}
