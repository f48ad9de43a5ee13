// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Section queries
	GetSectionsByEntityUIdHandler        gin.HandlerFunc
	GetSameEntitySectionsHandler         gin.HandlerFunc
	GetAvailableWorkplaceSectionsHandler gin.HandlerFunc
	GetSectionsInWorkplaceHandler        gin.HandlerFunc
	GetByTypeHandler                     gin.HandlerFunc

	// Section commands
	SaveHandler gin.HandlerFunc

	// Entity rights
	GetRelatedEntityIdsHandler                 gin.HandlerFunc
	GetNonAdministratedCaptionsHandler         gin.HandlerFunc
	SetAdministratedByRecordsHandler           gin.HandlerFunc
	GetEntitiesNotAdministratedHandler         gin.HandlerFunc
	SetConnectedEntitiesRightsHandler          gin.HandlerFunc
	SetConnectedEntitiesRightsBySectionHandler gin.HandlerFunc

	// Portal
	GetSspColumnAccessListHandler gin.HandlerFunc
}

// NewHandlerBundle wires a SectionHandler's methods into a bundle.
func NewHandlerBundle(h *SectionHandler) *HandlerBundle {
	return &HandlerBundle{
		GetSectionsByEntityUIdHandler:        h.GetSectionsByEntityUIdHandler,
		GetSameEntitySectionsHandler:         h.GetSameEntitySectionsHandler,
		GetAvailableWorkplaceSectionsHandler: h.GetAvailableWorkplaceSectionsHandler,
		GetSectionsInWorkplaceHandler:        h.GetSectionsInWorkplaceHandler,
		GetByTypeHandler:                     h.GetByTypeHandler,

		SaveHandler: h.SaveHandler,

		GetRelatedEntityIdsHandler:                 h.GetRelatedEntityIdsHandler,
		GetNonAdministratedCaptionsHandler:         h.GetNonAdministratedCaptionsHandler,
		SetAdministratedByRecordsHandler:           h.SetAdministratedByRecordsHandler,
		GetEntitiesNotAdministratedHandler:         h.GetEntitiesNotAdministratedHandler,
		SetConnectedEntitiesRightsHandler:          h.SetConnectedEntitiesRightsHandler,
		SetConnectedEntitiesRightsBySectionHandler: h.SetConnectedEntitiesRightsBySectionHandler,

		GetSspColumnAccessListHandler: h.GetSspColumnAccessListHandler,
	}
}
