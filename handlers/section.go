// File: handlers/section.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	sectionRepo "crmsections/database/repository/section"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/models"
	"crmsections/services/section"
	"crmsections/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SectionManagerProvider returns the section manager for a section type.
type SectionManagerProvider interface {
	ForType(sectionType models.SectionType) (section.SectionManager, error)
}

type SectionHandler struct {
	Managers SectionManagerProvider
}

func NewSectionHandler(managers SectionManagerProvider) *SectionHandler {
	return &SectionHandler{Managers: managers}
}

// manager resolves the manager for the "type" query parameter, general by default.
func (h *SectionHandler) manager(c *gin.Context) (section.SectionManager, bool) {
	sectionType := models.SectionTypeGeneral
	if raw := c.Query("type"); raw != "" {
		t, err := models.ParseSectionType(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid section type", err.Error())
			return nil, false
		}
		sectionType = t
	}
	m, err := h.Managers.ForType(sectionType)
	if err != nil {
		getLogger(c).Error("Failed to build section manager", zap.Stringer("type", sectionType), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Section service unavailable", "")
		return nil, false
	}
	return m, true
}

// idParam reads a path parameter that must hold a UUID.
func idParam(c *gin.Context, name string) (string, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid "+name, err.Error())
		return "", false
	}
	return id.String(), true
}

func writeError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, sectionRepo.ErrSectionNotFound), errors.Is(err, workplaceRepo.ErrWorkplaceNotFound):
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
	default:
		getLogger(c).Error(message, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, message, "")
	}
}

// GetSectionsByEntityUIdHandler handles GET /sections/entity/:entityUId.
func (h *SectionHandler) GetSectionsByEntityUIdHandler(c *gin.Context) {
	entityUId, ok := idParam(c, "entityUId")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	sections, err := m.GetSectionsByEntityUId(c.Request.Context(), entityUId)
	if err != nil {
		writeError(c, "Failed to get sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetSameEntitySectionsHandler handles GET /sections/:id/same-entity.
func (h *SectionHandler) GetSameEntitySectionsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	sections, err := m.GetSameEntitySections(c.Request.Context(), id)
	if err != nil {
		writeError(c, "Failed to get sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetAvailableWorkplaceSectionsHandler handles GET /sections/workplace/:workplaceId/available.
func (h *SectionHandler) GetAvailableWorkplaceSectionsHandler(c *gin.Context) {
	workplaceID, ok := idParam(c, "workplaceId")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	sections, err := m.GetAvailableWorkplaceSections(c.Request.Context(), workplaceID)
	if err != nil {
		writeError(c, "Failed to get available sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetSectionsInWorkplaceHandler handles GET /sections/workplace/:workplaceId.
// The optional useCache query parameter defaults to true.
func (h *SectionHandler) GetSectionsInWorkplaceHandler(c *gin.Context) {
	workplaceID, ok := idParam(c, "workplaceId")
	if !ok {
		return
	}
	useCache := true
	if raw := c.Query("useCache"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid useCache", err.Error())
			return
		}
		useCache = v
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	sections, err := m.GetSectionsInWorkplace(c.Request.Context(), workplaceID, useCache)
	if err != nil {
		writeError(c, "Failed to get workplace sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// GetByTypeHandler handles GET /sections/type/:type.
func (h *SectionHandler) GetByTypeHandler(c *gin.Context) {
	sectionType, err := models.ParseSectionType(c.Param("type"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid section type", err.Error())
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	sections, err := m.GetByType(c.Request.Context(), sectionType)
	if err != nil {
		writeError(c, "Failed to get sections", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// SaveHandler handles POST /sections/:id/save.
func (h *SectionHandler) SaveHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.Save(c.Request.Context(), id); err != nil {
		writeError(c, "Failed to save section", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section saved"})
}

// GetRelatedEntityIdsHandler handles GET /sections/:id/related-entities.
func (h *SectionHandler) GetRelatedEntityIdsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	entityIDs, err := m.GetRelatedEntityIds(c.Request.Context(), id)
	if err != nil {
		writeError(c, "Failed to get related entities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entityIds": entityIDs})
}

// GetNonAdministratedCaptionsHandler handles GET /sections/:id/non-administrated-captions.
func (h *SectionHandler) GetNonAdministratedCaptionsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	captions, err := m.GetSectionNonAdministratedByRecordsEntityCaptions(c.Request.Context(), id)
	if err != nil {
		writeError(c, "Failed to get entity captions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"captions": captions})
}

// SetAdministratedByRecordsHandler handles POST /sections/:id/administrate-by-records.
func (h *SectionHandler) SetAdministratedByRecordsHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.SetSectionSchemasAdministratedByRecords(c.Request.Context(), id); err != nil {
		writeError(c, "Failed to update section rights", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Section entities administrated by records"})
}

// GetSspColumnAccessListHandler handles GET /sections/ssp-columns/:entityUId.
func (h *SectionHandler) GetSspColumnAccessListHandler(c *gin.Context) {
	entityUId, ok := idParam(c, "entityUId")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	columns, err := m.GetSspColumnAccessList(c.Request.Context(), entityUId)
	if err != nil {
		writeError(c, "Failed to get portal columns", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"columnIds": columns})
}

// GetEntitiesNotAdministratedHandler handles GET /sections/entity-schemas/:schemaId/not-administrated.
func (h *SectionHandler) GetEntitiesNotAdministratedHandler(c *gin.Context) {
	schemaID, ok := idParam(c, "schemaId")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	byRecords, byOperations, err := m.GetEntitiesCaptionsNotAdministratedByRights(c.Request.Context(), schemaID)
	if err != nil {
		writeError(c, "Failed to get entity captions", err)
		return
	}
	c.JSON(http.StatusOK, models.EntityCaptionsNotAdministrated{ByRecords: byRecords, ByOperations: byOperations})
}

// SetConnectedEntitiesRightsHandler handles POST /sections/entity-schemas/:schemaId/connected-rights.
func (h *SectionHandler) SetConnectedEntitiesRightsHandler(c *gin.Context) {
	schemaID, ok := idParam(c, "schemaId")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.SetConnectedEntitiesRights(c.Request.Context(), schemaID); err != nil {
		writeError(c, "Failed to set connected entities rights", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connected entities rights updated"})
}

// SetConnectedEntitiesRightsBySectionHandler handles POST /sections/:id/connected-rights.
func (h *SectionHandler) SetConnectedEntitiesRightsBySectionHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	m, ok := h.manager(c)
	if !ok {
		return
	}
	if err := m.SetConnectedEntitiesRightsBySection(c.Request.Context(), id); err != nil {
		writeError(c, "Failed to set connected entities rights", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connected entities rights updated"})
}
