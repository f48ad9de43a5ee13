package sectionRepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"crmsections/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// getSchema loads one entity schema. A missing schema yields nil, nil.
func (r *MongoSectionRepo) getSchema(ctx context.Context, id string) (*models.EntitySchema, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var schema models.EntitySchema
	if err := r.schemas.FindOne(ctx, bson.M{"id": id}).Decode(&schema); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch entity schema with id %s: %w", id, err)
	}
	return &schema, nil
}

func (r *MongoSectionRepo) getSchemas(ctx context.Context, ids []string) ([]models.EntitySchema, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.schemas.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entity schemas: %w", err)
	}
	defer cursor.Close(ctx)

	var schemas []models.EntitySchema
	if err := cursor.All(ctx, &schemas); err != nil {
		return nil, fmt.Errorf("failed to decode entity schemas: %w", err)
	}
	return schemas, nil
}

// relatedEntityIDs lists the section entity followed by its connected
// entities, without duplicates.
func relatedEntityIDs(section *models.Section, schema *models.EntitySchema) []string {
	ids := []string{section.EntityUId}
	seen := map[string]bool{section.EntityUId: true}
	if schema == nil {
		return ids
	}
	for _, id := range schema.ConnectedEntityIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// captionsNotAdministrated reports which connected schemas are behind the
// owner: by records when the owner is administrated by records, by
// operations likewise.
func captionsNotAdministrated(owner models.EntitySchema, connected []models.EntitySchema) models.EntityCaptionsNotAdministrated {
	result := models.EntityCaptionsNotAdministrated{ByRecords: []string{}, ByOperations: []string{}}
	for _, s := range connected {
		if s.ID == owner.ID {
			continue
		}
		if owner.AdministratedByRecords && !s.AdministratedByRecords {
			result.ByRecords = append(result.ByRecords, s.Caption)
		}
		if owner.AdministratedByOperations && !s.AdministratedByOperations {
			result.ByOperations = append(result.ByOperations, s.Caption)
		}
	}
	sort.Strings(result.ByRecords)
	sort.Strings(result.ByOperations)
	return result
}

// GetRelatedEntityIds returns the section entity and the entities connected to it.
func (r *MongoSectionRepo) GetRelatedEntityIds(ctx context.Context, section *models.Section) ([]string, error) {
	schema, err := r.getSchema(ctx, section.EntityUId)
	if err != nil {
		return nil, err
	}
	return relatedEntityIDs(section, schema), nil
}

// GetSectionNonAdministratedByRecordsEntityCaptions returns the captions of
// related entities that are not administrated by records.
func (r *MongoSectionRepo) GetSectionNonAdministratedByRecordsEntityCaptions(ctx context.Context, section *models.Section) ([]string, error) {
	ids, err := r.GetRelatedEntityIds(ctx, section)
	if err != nil {
		return nil, err
	}
	schemas, err := r.getSchemas(ctx, ids)
	if err != nil {
		return nil, err
	}
	captions := []string{}
	for _, s := range schemas {
		if !s.AdministratedByRecords {
			captions = append(captions, s.Caption)
		}
	}
	sort.Strings(captions)
	return captions, nil
}

// SetSectionSchemasAdministratedByRecords turns on record administration for
// every related entity of the section.
func (r *MongoSectionRepo) SetSectionSchemasAdministratedByRecords(ctx context.Context, section *models.Section) error {
	ids, err := r.GetRelatedEntityIds(ctx, section)
	if err != nil {
		return err
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"administrated_by_records": true}}
	if _, err := r.schemas.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update rights of section %s entities: %w", section.ID, err)
	}
	return nil
}

// GetEntitiesCaptionsNotAdministratedByRights returns, for the owner schema,
// the captions of connected entities not administrated by records and by
// operations respectively.
func (r *MongoSectionRepo) GetEntitiesCaptionsNotAdministratedByRights(ctx context.Context, entitySchemaUId string) (models.EntityCaptionsNotAdministrated, error) {
	owner, err := r.getSchema(ctx, entitySchemaUId)
	if err != nil {
		return models.EntityCaptionsNotAdministrated{}, err
	}
	if owner == nil {
		return captionsNotAdministrated(models.EntitySchema{ID: entitySchemaUId}, nil), nil
	}
	connected, err := r.getSchemas(ctx, owner.ConnectedEntityIDs)
	if err != nil {
		return models.EntityCaptionsNotAdministrated{}, err
	}
	return captionsNotAdministrated(*owner, connected), nil
}

// SetConnectedEntitiesRights copies the owner's administration flags onto its
// connected entities. Flags the owner does not carry are left untouched.
func (r *MongoSectionRepo) SetConnectedEntitiesRights(ctx context.Context, entitySchemaUId string) error {
	owner, err := r.getSchema(ctx, entitySchemaUId)
	if err != nil {
		return err
	}
	if owner == nil || len(owner.ConnectedEntityIDs) == 0 {
		return nil
	}

	set := bson.M{}
	if owner.AdministratedByRecords {
		set["administrated_by_records"] = true
	}
	if owner.AdministratedByOperations {
		set["administrated_by_operations"] = true
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"id": bson.M{"$in": owner.ConnectedEntityIDs}}
	if _, err := r.schemas.UpdateMany(ctx, filter, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to set connected entities rights for %s: %w", entitySchemaUId, err)
	}
	return nil
}
