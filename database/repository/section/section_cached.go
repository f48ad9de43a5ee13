package sectionRepo

import (
	"context"
	"fmt"

	"crmsections/models"

	"go.uber.org/zap"
)

// CachedSectionRepo keeps the full section list of one type in a
// SectionCache. Reads go through the cache; Save writes through and drops
// the cached list. Entity rights operations go straight to the backend.
type CachedSectionRepo struct {
	SectionRepository
	cache       SectionCache
	sectionType models.SectionType
	logger      *zap.Logger
}

func NewCachedSectionRepo(backend SectionRepository, cache SectionCache, sectionType models.SectionType, logger *zap.Logger) *CachedSectionRepo {
	return &CachedSectionRepo{
		SectionRepository: backend,
		cache:             cache,
		sectionType:       sectionType,
		logger:            logger,
	}
}

// GetAll returns the cached list, loading it from the backend on a miss.
// Cache failures are logged and fall back to the backend.
func (r *CachedSectionRepo) GetAll(ctx context.Context) ([]models.Section, error) {
	sections, ok, err := r.cache.Get(ctx, r.sectionType)
	if err != nil {
		r.logger.Warn("section cache read failed", zap.Stringer("type", r.sectionType), zap.Error(err))
	}
	if ok {
		return sections, nil
	}

	sections, err = r.SectionRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, r.sectionType, sections); err != nil {
		r.logger.Warn("section cache write failed", zap.Stringer("type", r.sectionType), zap.Error(err))
	}
	return sections, nil
}

// Get looks the section up in the cached list first. Sections of other
// types are not cached and come from the backend.
func (r *CachedSectionRepo) Get(ctx context.Context, id string) (*models.Section, error) {
	sections, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		if sections[i].ID == id {
			s := sections[i]
			return &s, nil
		}
	}
	return r.SectionRepository.Get(ctx, id)
}

func (r *CachedSectionRepo) GetByType(ctx context.Context, sectionType models.SectionType) ([]models.Section, error) {
	if sectionType == r.sectionType {
		return r.GetAll(ctx)
	}
	return r.SectionRepository.GetByType(ctx, sectionType)
}

func (r *CachedSectionRepo) Save(ctx context.Context, section *models.Section) error {
	if err := r.SectionRepository.Save(ctx, section); err != nil {
		return err
	}
	return r.ClearCache(ctx)
}

// ClearCache drops the cached section list.
func (r *CachedSectionRepo) ClearCache(ctx context.Context) error {
	if err := r.cache.Delete(ctx, r.sectionType); err != nil {
		return fmt.Errorf("failed to clear %s section cache: %w", r.sectionType, err)
	}
	r.logger.Debug("section cache cleared", zap.Stringer("type", r.sectionType))
	return nil
}
