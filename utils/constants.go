// File: utils/constants.go
package utils

// Gin context keys shared by middleware and handlers.
const (
	ContextKeyActor  = "actor"
	ContextKeyLogger = "logger"
)

// SectionCachePrefix is the prefix used for Redis section cache keys.
const SectionCachePrefix = "sections:all:"
