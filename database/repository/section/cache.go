package sectionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crmsections/models"
	"crmsections/utils"

	"github.com/go-redis/redis/v8"
)

// SectionCache stores full section lists keyed by section type.
type SectionCache interface {
	Get(ctx context.Context, sectionType models.SectionType) ([]models.Section, bool, error)
	Set(ctx context.Context, sectionType models.SectionType, sections []models.Section) error
	Delete(ctx context.Context, sectionType models.SectionType) error
}

type RedisSectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSectionCache(client *redis.Client, ttl time.Duration) *RedisSectionCache {
	return &RedisSectionCache{client: client, ttl: ttl}
}

func cacheKey(sectionType models.SectionType) string {
	return utils.SectionCachePrefix + sectionType.String()
}

func (c *RedisSectionCache) Get(ctx context.Context, sectionType models.SectionType) ([]models.Section, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(sectionType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var sections []models.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, false, err
	}
	return sections, true, nil
}

func (c *RedisSectionCache) Set(ctx context.Context, sectionType models.SectionType, sections []models.Section) error {
	b, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(sectionType), b, c.ttl).Err()
}

func (c *RedisSectionCache) Delete(ctx context.Context, sectionType models.SectionType) error {
	return c.client.Del(ctx, cacheKey(sectionType)).Err()
}
