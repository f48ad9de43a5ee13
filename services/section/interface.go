package section

import (
	"context"

	"crmsections/models"
)

// SectionManager coordinates section queries and commands for one section type.
type SectionManager interface {
	// Queries
	GetSectionsByEntityUId(ctx context.Context, entityUId string) ([]models.Section, error)
	GetSameEntitySections(ctx context.Context, sectionID string) ([]models.Section, error)
	GetAvailableWorkplaceSections(ctx context.Context, workplaceID string) ([]models.Section, error)
	GetByType(ctx context.Context, sectionType models.SectionType) ([]models.Section, error)
	GetSectionsInWorkplace(ctx context.Context, workplaceID string, useCache bool) ([]models.Section, error)

	// Persistence
	Save(ctx context.Context, sectionID string) error

	// Entity rights
	GetRelatedEntityIds(ctx context.Context, sectionID string) ([]string, error)
	GetSectionNonAdministratedByRecordsEntityCaptions(ctx context.Context, sectionID string) ([]string, error)
	SetSectionSchemasAdministratedByRecords(ctx context.Context, sectionID string) error
	GetEntitiesCaptionsNotAdministratedByRights(ctx context.Context, entitySchemaUId string) (byRecords, byOperations []string, err error)
	SetConnectedEntitiesRights(ctx context.Context, entitySchemaUId string) error
	SetConnectedEntitiesRightsBySection(ctx context.Context, sectionID string) error

	// Portal
	GetSspColumnAccessList(ctx context.Context, entityUId string) ([]string, error)
}
