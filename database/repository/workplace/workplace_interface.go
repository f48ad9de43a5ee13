package workplaceRepo

import (
	"context"
	"errors"

	"crmsections/models"
)

// ErrWorkplaceNotFound is returned when no workplace has the requested id.
var ErrWorkplaceNotFound = errors.New("workplace not found")

// WorkplaceRepository defines methods for workplace data access.
type WorkplaceRepository interface {
	// Get retrieves a workplace by its unique ID.
	Get(ctx context.Context, id string) (*models.Workplace, error)
	// GetAll retrieves all workplaces.
	GetAll(ctx context.Context) ([]models.Workplace, error)
}
