package section

import (
	"context"
	"fmt"
	"slices"
	"sort"

	sectionRepo "crmsections/database/repository/section"
	sspEntityRepo "crmsections/database/repository/sspentity"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/models"
	"crmsections/services/access"

	"go.uber.org/zap"
)

// DefaultSectionManager is the production implementation.
type DefaultSectionManager struct {
	Sections   sectionRepo.SectionRepository
	Workplaces workplaceRepo.WorkplaceRepository
	SspEntity  sspEntityRepo.SspEntityRepository
	Access     access.WorkplaceSectionAccessManager
	Logger     *zap.Logger
}

func NewDefaultSectionManager(
	sections sectionRepo.SectionRepository,
	workplaces workplaceRepo.WorkplaceRepository,
	sspEntity sspEntityRepo.SspEntityRepository,
	accessManager access.WorkplaceSectionAccessManager,
	logger *zap.Logger,
) (*DefaultSectionManager, error) {
	if sections == nil || workplaces == nil || sspEntity == nil || accessManager == nil {
		return nil, fmt.Errorf("section manager initialization error: one or more dependencies are nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultSectionManager{
		Sections:   sections,
		Workplaces: workplaces,
		SspEntity:  sspEntity,
		Access:     accessManager,
		Logger:     logger,
	}, nil
}

func filterSections(sections []models.Section, keep func(models.Section) bool) []models.Section {
	out := []models.Section{}
	for _, s := range sections {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (m *DefaultSectionManager) getSection(ctx context.Context, sectionID string) (*models.Section, error) {
	s, err := m.Sections.Get(ctx, sectionID)
	if err != nil {
		m.Logger.Debug("section lookup failed", zap.String("sectionID", sectionID), zap.Error(err))
		return nil, fmt.Errorf("failed to get section: %w", err)
	}
	return s, nil
}

func (m *DefaultSectionManager) getWorkplace(ctx context.Context, workplaceID string) (*models.Workplace, error) {
	w, err := m.Workplaces.Get(ctx, workplaceID)
	if err != nil {
		m.Logger.Debug("workplace lookup failed", zap.String("workplaceID", workplaceID), zap.Error(err))
		return nil, fmt.Errorf("failed to get workplace: %w", err)
	}
	return w, nil
}

func (m *DefaultSectionManager) sectionsWithEntity(ctx context.Context, entityUId string) ([]models.Section, error) {
	all, err := m.Sections.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	return filterSections(all, func(s models.Section) bool { return s.EntityUId == entityUId }), nil
}

// GetSectionsByEntityUId returns the sections displaying the given entity.
func (m *DefaultSectionManager) GetSectionsByEntityUId(ctx context.Context, entityUId string) ([]models.Section, error) {
	return m.sectionsWithEntity(ctx, entityUId)
}

// GetSameEntitySections returns every section sharing the entity of the
// given section. The section itself is included when it has the type the
// manager is bound to.
func (m *DefaultSectionManager) GetSameEntitySections(ctx context.Context, sectionID string) ([]models.Section, error) {
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return m.sectionsWithEntity(ctx, s.EntityUId)
}

// GetAvailableWorkplaceSections returns sections that could be added to the
// workplace: same type tag and not already a member.
func (m *DefaultSectionManager) GetAvailableWorkplaceSections(ctx context.Context, workplaceID string) ([]models.Section, error) {
	w, err := m.getWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	all, err := m.Sections.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	return filterSections(all, func(s models.Section) bool {
		return w.AcceptsType(s.Type) && !s.IsInWorkplace(w.ID)
	}), nil
}

func (m *DefaultSectionManager) GetByType(ctx context.Context, sectionType models.SectionType) ([]models.Section, error) {
	return m.Sections.GetByType(ctx, sectionType)
}

// Save clears the section cache, then re-reads the section and persists it,
// so the freshest stored state is written back.
func (m *DefaultSectionManager) Save(ctx context.Context, sectionID string) error {
	if err := m.Sections.ClearCache(ctx); err != nil {
		return err
	}
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return err
	}
	if err := m.Sections.Save(ctx, s); err != nil {
		return fmt.Errorf("failed to save section %s: %w", sectionID, err)
	}
	return nil
}

func (m *DefaultSectionManager) GetRelatedEntityIds(ctx context.Context, sectionID string) ([]string, error) {
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return m.Sections.GetRelatedEntityIds(ctx, s)
}

func (m *DefaultSectionManager) GetSectionNonAdministratedByRecordsEntityCaptions(ctx context.Context, sectionID string) ([]string, error) {
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return m.Sections.GetSectionNonAdministratedByRecordsEntityCaptions(ctx, s)
}

func (m *DefaultSectionManager) SetSectionSchemasAdministratedByRecords(ctx context.Context, sectionID string) error {
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return err
	}
	return m.Sections.SetSectionSchemasAdministratedByRecords(ctx, s)
}

func (m *DefaultSectionManager) GetSspColumnAccessList(ctx context.Context, entityUId string) ([]string, error) {
	return m.SspEntity.GetSspColumnAccessList(ctx, entityUId)
}

func (m *DefaultSectionManager) allowedSectionIDs(ctx context.Context, workplaceID string) ([]string, error) {
	structure, err := m.Access.GetAllowedWorkplaceStructure(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get allowed workplace sections: %w", err)
	}
	return structure.AllowedSectionIDs(workplaceID), nil
}

// GetSectionsInWorkplace returns the workplace sections the actor may see,
// ordered by the workplace's declared section order. Allowed members missing
// from that order come first. Pass useCache=false to force a fresh read.
func (m *DefaultSectionManager) GetSectionsInWorkplace(ctx context.Context, workplaceID string, useCache bool) ([]models.Section, error) {
	w, err := m.getWorkplace(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	if !useCache {
		if err := m.Sections.ClearCache(ctx); err != nil {
			return nil, err
		}
	}
	allowed, err := m.allowedSectionIDs(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	order := w.GetSectionIDs()
	all, err := m.Sections.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}

	visible := filterSections(all, func(s models.Section) bool {
		return s.IsInWorkplace(w.ID) && slices.Contains(allowed, s.ID)
	})
	sort.SliceStable(visible, func(i, j int) bool {
		return slices.Index(order, visible[i].ID) < slices.Index(order, visible[j].ID)
	})
	return visible, nil
}

func (m *DefaultSectionManager) GetEntitiesCaptionsNotAdministratedByRights(ctx context.Context, entitySchemaUId string) (byRecords, byOperations []string, err error) {
	captions, err := m.Sections.GetEntitiesCaptionsNotAdministratedByRights(ctx, entitySchemaUId)
	if err != nil {
		return nil, nil, err
	}
	return captions.ByRecords, captions.ByOperations, nil
}

func (m *DefaultSectionManager) SetConnectedEntitiesRights(ctx context.Context, entitySchemaUId string) error {
	return m.Sections.SetConnectedEntitiesRights(ctx, entitySchemaUId)
}

func (m *DefaultSectionManager) SetConnectedEntitiesRightsBySection(ctx context.Context, sectionID string) error {
	s, err := m.getSection(ctx, sectionID)
	if err != nil {
		return err
	}
	return m.Sections.SetConnectedEntitiesRights(ctx, s.EntityUId)
}
