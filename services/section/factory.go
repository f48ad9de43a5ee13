package section

import (
	"fmt"
	"sync"

	sectionRepo "crmsections/database/repository/section"
	sspEntityRepo "crmsections/database/repository/sspentity"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/models"
	"crmsections/services/access"

	"go.uber.org/zap"
)

// Factory hands out section managers bound to a section type. The workplace,
// portal and access collaborators are shared; the section repository is
// built once per type by NewSectionRepo.
type Factory struct {
	NewSectionRepo func(models.SectionType) sectionRepo.SectionRepository
	Workplaces     workplaceRepo.WorkplaceRepository
	SspEntity      sspEntityRepo.SspEntityRepository
	Access         access.WorkplaceSectionAccessManager
	Logger         *zap.Logger

	mu       sync.Mutex
	managers map[models.SectionType]*DefaultSectionManager
}

// ForType returns the manager for sectionType, creating it on first use.
func (f *Factory) ForType(sectionType models.SectionType) (SectionManager, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok := f.managers[sectionType]; ok {
		return m, nil
	}
	if f.NewSectionRepo == nil {
		return nil, fmt.Errorf("section factory: no section repository constructor")
	}
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := NewDefaultSectionManager(
		f.NewSectionRepo(sectionType),
		f.Workplaces,
		f.SspEntity,
		f.Access,
		logger.With(zap.Stringer("sectionType", sectionType)),
	)
	if err != nil {
		return nil, err
	}
	if f.managers == nil {
		f.managers = map[models.SectionType]*DefaultSectionManager{}
	}
	f.managers[sectionType] = m
	return m, nil
}
