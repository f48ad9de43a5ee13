package access

import (
	"context"
	"fmt"
	"sort"

	sectionRightsRepo "crmsections/database/repository/sectionrights"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/models"

	"go.uber.org/zap"
)

// DefaultWorkplaceSectionAccessManager evaluates workplace role lists and
// section rights for the actor found in the request context.
//
// A workplace with no roles is open to every actor. A section with no rights
// entry is visible to every actor admitted to its workplace. Holders of
// AdminRoleID see all workplaces and sections. Requests without an actor see
// nothing.
type DefaultWorkplaceSectionAccessManager struct {
	Workplaces  workplaceRepo.WorkplaceRepository
	Rights      sectionRightsRepo.SectionRightsRepository
	AdminRoleID string
	Logger      *zap.Logger
}

func NewDefaultWorkplaceSectionAccessManager(
	workplaces workplaceRepo.WorkplaceRepository,
	rights sectionRightsRepo.SectionRightsRepository,
	adminRoleID string,
	logger *zap.Logger,
) (*DefaultWorkplaceSectionAccessManager, error) {
	if workplaces == nil || rights == nil || logger == nil {
		return nil, fmt.Errorf("access manager initialization error: one or more dependencies are nil")
	}
	return &DefaultWorkplaceSectionAccessManager{
		Workplaces:  workplaces,
		Rights:      rights,
		AdminRoleID: adminRoleID,
		Logger:      logger,
	}, nil
}

func (m *DefaultWorkplaceSectionAccessManager) isAdmin(actor Actor) bool {
	return m.AdminRoleID != "" && actor.HasAnyRole([]string{m.AdminRoleID})
}

func (m *DefaultWorkplaceSectionAccessManager) GetAllowedWorkplaceStructure(ctx context.Context) (models.AllowedWorkplaceStructure, error) {
	structure := models.AllowedWorkplaceStructure{}

	actor, ok := ActorFromContext(ctx)
	if !ok {
		m.Logger.Debug("no actor in context, no workplaces allowed")
		return structure, nil
	}

	workplaces, err := m.Workplaces.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workplaces: %w", err)
	}
	rights, err := m.Rights.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load section rights: %w", err)
	}

	admin := m.isAdmin(actor)
	for _, w := range workplaces {
		if !admin && len(w.RoleIDs) > 0 && !actor.HasAnyRole(w.RoleIDs) {
			continue
		}
		allowed := []string{}
		for _, sectionID := range w.SectionIDs {
			sr, restricted := rights[sectionID]
			if admin || !restricted || actor.HasAnyRole(sr.RoleIDs) {
				allowed = append(allowed, sectionID)
			}
		}
		structure[w.ID] = models.AllowedWorkplaceStructureInfo{WorkplaceID: w.ID, AllowedSectionIDs: allowed}
	}
	return structure, nil
}

func (m *DefaultWorkplaceSectionAccessManager) GetAllAllowedWorkplacesWithSections(ctx context.Context) ([]models.AllowedWorkplaceStructureInfo, error) {
	structure, err := m.GetAllowedWorkplaceStructure(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]models.AllowedWorkplaceStructureInfo, 0, len(structure))
	for _, info := range structure {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].WorkplaceID < infos[j].WorkplaceID })
	return infos, nil
}
