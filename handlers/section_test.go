package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sectionRepo "crmsections/database/repository/section"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/models"
	"crmsections/services/section"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	sectionID   = "6f1c1b8e-6a44-4d0b-9f2f-0d7a3f5b1c01"
	workplaceID = "0b0b5a52-2b7c-4c4e-8a55-6a3c3d2f9e10"
	entityID    = "25d7c1ab-1de0-4501-b402-02e0e5a72d6e"
	missingID   = "11111111-1111-1111-1111-111111111111"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeManager struct {
	section.SectionManager
	sectionType models.SectionType
	useCache    []bool
	saved       []string
}

func notFound(id string) error {
	return fmt.Errorf("failed to get section: %w", fmt.Errorf("section %s: %w", id, sectionRepo.ErrSectionNotFound))
}

func (f *fakeManager) GetSectionsInWorkplace(ctx context.Context, id string, useCache bool) ([]models.Section, error) {
	if id == missingID {
		return nil, fmt.Errorf("workplace %s: %w", id, workplaceRepo.ErrWorkplaceNotFound)
	}
	f.useCache = append(f.useCache, useCache)
	return []models.Section{{ID: sectionID, Type: f.sectionType, Workplaces: []string{id}}}, nil
}

func (f *fakeManager) GetByType(ctx context.Context, t models.SectionType) ([]models.Section, error) {
	return []models.Section{{ID: sectionID, Type: t}}, nil
}

func (f *fakeManager) Save(ctx context.Context, id string) error {
	if id == missingID {
		return notFound(id)
	}
	f.saved = append(f.saved, id)
	return nil
}

func (f *fakeManager) GetRelatedEntityIds(ctx context.Context, id string) ([]string, error) {
	return nil, errors.New("mongo unavailable")
}

func (f *fakeManager) GetEntitiesCaptionsNotAdministratedByRights(ctx context.Context, id string) ([]string, []string, error) {
	return []string{"Contacts"}, []string{}, nil
}

func (f *fakeManager) GetSspColumnAccessList(ctx context.Context, id string) ([]string, error) {
	return []string{"name"}, nil
}

type fakeProvider map[models.SectionType]*fakeManager

func (p fakeProvider) ForType(t models.SectionType) (section.SectionManager, error) {
	m, ok := p[t]
	if !ok {
		return nil, errors.New("no manager")
	}
	return m, nil
}

func newTestRouter(p fakeProvider) *gin.Engine {
	hb := NewHandlerBundle(NewSectionHandler(p))
	r := gin.New()
	r.GET("/workplace/:workplaceId", hb.GetSectionsInWorkplaceHandler)
	r.GET("/type/:type", hb.GetByTypeHandler)
	r.POST("/id/:id/save", hb.SaveHandler)
	r.GET("/id/:id/related-entities", hb.GetRelatedEntityIdsHandler)
	r.GET("/entity-schemas/:schemaId/not-administrated", hb.GetEntitiesNotAdministratedHandler)
	r.GET("/ssp-columns/:entityUId", hb.GetSspColumnAccessListHandler)
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestGetSectionsInWorkplaceHandler(t *testing.T) {
	general := &fakeManager{sectionType: models.SectionTypeGeneral}
	ssp := &fakeManager{sectionType: models.SectionTypeSSP}
	r := newTestRouter(fakeProvider{models.SectionTypeGeneral: general, models.SectionTypeSSP: ssp})

	w := serve(r, http.MethodGet, "/workplace/"+workplaceID)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), sectionID)

	w = serve(r, http.MethodGet, "/workplace/"+workplaceID+"?useCache=false&type=ssp")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []bool{true}, general.useCache)
	require.Equal(t, []bool{false}, ssp.useCache)

	require.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/workplace/"+workplaceID+"?useCache=maybe").Code)
	require.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/workplace/not-a-uuid").Code)
	require.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/workplace/"+workplaceID+"?type=portal").Code)
	require.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/workplace/"+missingID).Code)
	require.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/workplace/"+workplaceID+"?type=mobile").Code)
}

func TestGetByTypeHandler(t *testing.T) {
	r := newTestRouter(fakeProvider{models.SectionTypeGeneral: &fakeManager{}})

	w := serve(r, http.MethodGet, "/type/ssp")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"sections":[{"id":"`+sectionID+`","code":"","caption":"","type":1,"entityUId":"","workplaces":[],"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]}`, w.Body.String())

	require.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/type/unknown").Code)
}

func TestSaveHandler(t *testing.T) {
	m := &fakeManager{}
	r := newTestRouter(fakeProvider{models.SectionTypeGeneral: m})

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/id/"+sectionID+"/save").Code)
	require.Equal(t, []string{sectionID}, m.saved)

	w := serve(r, http.MethodPost, "/id/"+missingID+"/save")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "section not found")
}

func TestHandlerMapsUnexpectedErrorsTo500(t *testing.T) {
	r := newTestRouter(fakeProvider{models.SectionTypeGeneral: &fakeManager{}})

	w := serve(r, http.MethodGet, "/id/"+sectionID+"/related-entities")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "mongo unavailable")
}

func TestEntityCaptionAndPortalHandlers(t *testing.T) {
	r := newTestRouter(fakeProvider{models.SectionTypeGeneral: &fakeManager{}})

	w := serve(r, http.MethodGet, "/entity-schemas/"+entityID+"/not-administrated")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"byRecords":["Contacts"],"byOperations":[]}`, w.Body.String())

	w = serve(r, http.MethodGet, "/ssp-columns/"+entityID)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"columnIds":["name"]}`, w.Body.String())
}
