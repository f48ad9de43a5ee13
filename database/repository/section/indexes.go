package sectionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSectionRepo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	sectionIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "entity_uid", Value: 1}}},
	}
	if _, err := r.sections.Indexes().CreateMany(ctx, sectionIndexes); err != nil {
		return fmt.Errorf("failed to create section indexes: %w", err)
	}

	schemaIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.schemas.Indexes().CreateMany(ctx, schemaIndexes); err != nil {
		return fmt.Errorf("failed to create entity schema indexes: %w", err)
	}
	return nil
}
