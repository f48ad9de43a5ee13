package sectionRightsRepo

import (
	"context"
	"fmt"
	"time"

	"crmsections/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SectionRightsRepository reads which roles may see which sections.
type SectionRightsRepository interface {
	// GetAll returns the rights of every section that has any, keyed by
	// section id. Sections without an entry are unrestricted.
	GetAll(ctx context.Context) (map[string]models.SectionRights, error)
}

type MongoSectionRightsRepo struct {
	coll *mongo.Collection
}

func NewMongoSectionRightsRepo(db *mongo.Database) SectionRightsRepository {
	return &MongoSectionRightsRepo{coll: db.Collection("section_rights")}
}

func (r *MongoSectionRightsRepo) GetAll(ctx context.Context) (map[string]models.SectionRights, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve section rights: %w", err)
	}
	defer cursor.Close(ctx)

	rights := map[string]models.SectionRights{}
	for cursor.Next(ctx) {
		var sr models.SectionRights
		if err := cursor.Decode(&sr); err != nil {
			return nil, fmt.Errorf("failed to decode section rights: %w", err)
		}
		// Several documents for one section widen its role list.
		existing := rights[sr.SectionID]
		existing.SectionID = sr.SectionID
		existing.RoleIDs = append(existing.RoleIDs, sr.RoleIDs...)
		rights[sr.SectionID] = existing
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate section rights: %w", err)
	}
	return rights, nil
}
