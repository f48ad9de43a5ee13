package sectionRepo

import (
	"context"
	"errors"

	"crmsections/models"
)

// ErrSectionNotFound is returned when no section has the requested id.
var ErrSectionNotFound = errors.New("section not found")

// SectionRepository defines methods for section data access.
type SectionRepository interface {
	// GetAll retrieves every section of the repository's section type.
	GetAll(ctx context.Context) ([]models.Section, error)
	// Get retrieves a section by its unique ID.
	Get(ctx context.Context, id string) (*models.Section, error)
	// GetByType retrieves all sections of the given type.
	GetByType(ctx context.Context, sectionType models.SectionType) ([]models.Section, error)
	// Save inserts or replaces a section.
	Save(ctx context.Context, section *models.Section) error
	// ClearCache drops any cached section state.
	ClearCache(ctx context.Context) error
	// GetRelatedEntityIds returns the section entity and the entities connected to it.
	GetRelatedEntityIds(ctx context.Context, section *models.Section) ([]string, error)
	// GetSectionNonAdministratedByRecordsEntityCaptions returns captions of the
	// section's related entities that are not administrated by records.
	GetSectionNonAdministratedByRecordsEntityCaptions(ctx context.Context, section *models.Section) ([]string, error)
	// SetSectionSchemasAdministratedByRecords turns on record administration
	// for all of the section's related entities.
	SetSectionSchemasAdministratedByRecords(ctx context.Context, section *models.Section) error
	// GetEntitiesCaptionsNotAdministratedByRights returns the captions of
	// connected entities lagging behind their owner's rights administration.
	GetEntitiesCaptionsNotAdministratedByRights(ctx context.Context, entitySchemaUId string) (models.EntityCaptionsNotAdministrated, error)
	// SetConnectedEntitiesRights copies the owner's administration flags to
	// its connected entities.
	SetConnectedEntitiesRights(ctx context.Context, entitySchemaUId string) error
}
