package workplaceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crmsections/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkplaceRepo implements WorkplaceRepository using MongoDB.
type MongoWorkplaceRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkplaceRepo creates a new instance of WorkplaceRepository using MongoDB.
func NewMongoWorkplaceRepo(db *mongo.Database) WorkplaceRepository {
	return &MongoWorkplaceRepo{coll: db.Collection("workplaces")}
}

// EnsureIndexes creates the workplace indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection("workplaces").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create workplace indexes: %w", err)
	}
	return nil
}

// Get retrieves a workplace by its unique ID.
func (r *MongoWorkplaceRepo) Get(ctx context.Context, id string) (*models.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var workplace models.Workplace
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&workplace); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("workplace %s: %w", id, ErrWorkplaceNotFound)
		}
		return nil, fmt.Errorf("failed to fetch workplace with id %s: %w", id, err)
	}
	return &workplace, nil
}

// GetAll retrieves all workplaces.
func (r *MongoWorkplaceRepo) GetAll(ctx context.Context) ([]models.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workplaces: %w", err)
	}
	defer cursor.Close(ctx)

	workplaces := []models.Workplace{}
	if err := cursor.All(ctx, &workplaces); err != nil {
		return nil, fmt.Errorf("failed to decode workplaces: %w", err)
	}
	return workplaces, nil
}
