package access

import (
	"context"

	"crmsections/models"
)

// WorkplaceSectionAccessManager computes which workplace sections the actor
// in ctx may see.
type WorkplaceSectionAccessManager interface {
	// GetAllAllowedWorkplacesWithSections returns one entry per workplace the
	// actor may enter, ordered by workplace id.
	GetAllAllowedWorkplacesWithSections(ctx context.Context) ([]models.AllowedWorkplaceStructureInfo, error)
	// GetAllowedWorkplaceStructure returns the same entries keyed by workplace id.
	GetAllowedWorkplaceStructure(ctx context.Context) (models.AllowedWorkplaceStructure, error)
}
