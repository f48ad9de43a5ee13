package sectionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crmsections/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoSectionRepo implements SectionRepository using MongoDB. It is bound to
// a single section type: GetAll only sees sections of that type.
type MongoSectionRepo struct {
	sections    *mongo.Collection
	schemas     *mongo.Collection
	sectionType models.SectionType
}

// NewMongoSectionRepo creates a new instance of SectionRepository using MongoDB.
func NewMongoSectionRepo(db *mongo.Database, sectionType models.SectionType) SectionRepository {
	return &MongoSectionRepo{
		sections:    db.Collection("sections"),
		schemas:     db.Collection("entity_schemas"),
		sectionType: sectionType,
	}
}

// EnsureIndexes creates the section and entity schema indexes. It is run once
// at startup rather than per repository instance.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) {
	repo := &MongoSectionRepo{sections: db.Collection("sections"), schemas: db.Collection("entity_schemas")}
	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("failed to create section indexes", zap.Error(err))
	}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoSectionRepo) find(ctx context.Context, filter bson.M) ([]models.Section, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.sections.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "caption", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sections: %w", err)
	}
	defer cursor.Close(ctx)

	sections := []models.Section{}
	for cursor.Next(ctx) {
		var s models.Section
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode section: %w", err)
		}
		sections = append(sections, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sections: %w", err)
	}
	return sections, nil
}

// GetAll retrieves all sections of the repository's type.
func (r *MongoSectionRepo) GetAll(ctx context.Context) ([]models.Section, error) {
	return r.find(ctx, bson.M{"type": r.sectionType})
}

// Get retrieves a section by its unique ID.
func (r *MongoSectionRepo) Get(ctx context.Context, id string) (*models.Section, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var section models.Section
	if err := r.sections.FindOne(ctx, bson.M{"id": id}).Decode(&section); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("section %s: %w", id, ErrSectionNotFound)
		}
		return nil, fmt.Errorf("failed to fetch section with id %s: %w", id, err)
	}
	return &section, nil
}

// GetByType retrieves all sections of the given type.
func (r *MongoSectionRepo) GetByType(ctx context.Context, sectionType models.SectionType) ([]models.Section, error) {
	return r.find(ctx, bson.M{"type": sectionType})
}

// Save upserts the section document, assigning an id to new sections.
func (r *MongoSectionRepo) Save(ctx context.Context, section *models.Section) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	now := time.Now()
	section.UpdatedAt = now
	if section.CreatedAt.IsZero() {
		section.CreatedAt = now
	}

	filter := bson.M{"id": section.ID}
	update := bson.M{
		"$set": bson.M{
			"code":       section.Code,
			"caption":    section.Caption,
			"type":       section.Type,
			"entity_uid": section.EntityUId,
			"workplaces": section.Workplaces,
			"updated_at": section.UpdatedAt,
		},
		"$setOnInsert": bson.M{"created_at": section.CreatedAt},
	}
	if _, err := r.sections.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to save section with id %s: %w", section.ID, err)
	}
	return nil
}

// ClearCache is a no-op: MongoSectionRepo always reads the database.
func (r *MongoSectionRepo) ClearCache(ctx context.Context) error {
	return nil
}
