package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/config"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/service"
)

type fakeCampService struct {
	page       domain.CampPage
	camp       domain.Camp
	err        error
	lastFilter domain.CampFilter
}

func (f *fakeCampService) CreateCamp(_ context.Context, camp domain.Camp, _ []uint) (domain.Camp, error) {
	if f.err != nil {
		return domain.Camp{}, f.err
	}
	camp.ID = 1

	return camp, nil
}

func (f *fakeCampService) UpdateCamp(_ context.Context, camp domain.Camp, _ []uint) (domain.Camp, error) {
	return camp, f.err
}

func (f *fakeCampService) DeleteCamp(_ context.Context, _ uint) error {
	return f.err
}

func (f *fakeCampService) GetCamp(_ context.Context, _ uint) (domain.Camp, error) {
	return f.camp, f.err
}

func (f *fakeCampService) GetPublishedCamp(_ context.Context, _ string) (domain.Camp, error) {
	return f.camp, f.err
}

func (f *fakeCampService) ListPublishedCamps(_ context.Context, filter domain.CampFilter) (domain.CampPage, error) {
	f.lastFilter = filter

	return f.page, f.err
}

func (f *fakeCampService) ListCamps(_ context.Context, filter domain.CampFilter) (domain.CampPage, error) {
	f.lastFilter = filter

	return f.page, f.err
}

func (f *fakeCampService) FeaturedCamps(_ context.Context) ([]domain.Camp, error) {
	return f.page.Camps, f.err
}

func (f *fakeCampService) RelatedCamps(_ context.Context, _ string) ([]domain.Camp, error) {
	return f.page.Camps, f.err
}

func (f *fakeCampService) ReplaceSessions(_ context.Context, _ uint, sessions []domain.CampSession) ([]domain.CampSession, error) {
	return sessions, f.err
}

func (f *fakeCampService) ReplaceGallery(_ context.Context, _ uint, images []domain.GalleryImage) ([]domain.GalleryImage, error) {
	return images, f.err
}

func (f *fakeCampService) ReplaceActivities(_ context.Context, _ uint, names []string) ([]domain.Activity, error) {
	result := make([]domain.Activity, len(names))
	for i, name := range names {
		result[i] = domain.Activity{Name: name, SortOrder: i}
	}

	return result, f.err
}

func (f *fakeCampService) ReplaceFacilities(_ context.Context, _ uint, names []string) ([]domain.Facility, error) {
	return nil, f.err
}

func (f *fakeCampService) ReplaceHighlights(_ context.Context, _ uint, texts []string) ([]domain.Highlight, error) {
	return nil, f.err
}

func (f *fakeCampService) ReplaceFAQs(_ context.Context, _ uint, faqs []domain.FAQ) ([]domain.FAQ, error) {
	return faqs, f.err
}

func (f *fakeCampService) ReplaceSchedule(_ context.Context, _ uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	return entries, f.err
}

func newCampTestRouter(svc CampService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	conf := &config.APIConfig{ImageHosts: []string{"images.camlisting.com"}}
	handler := NewCampHandler(conf, svc)

	router := gin.New()
	router.GET("/camps", handler.HandleListCamps)
	router.GET("/camps/:slug", handler.HandleGetCamp)
	router.POST("/admin/camps", handler.HandleCreateCamp)
	router.PUT("/admin/camps/:campID/activities", handler.HandleReplaceActivities)

	return router
}

func TestCampHandler_HandleListCamps(t *testing.T) {
	svc := &fakeCampService{page: domain.CampPage{
		Camps: []domain.Camp{{ID: 1, Name: "Lakeside", Slug: "lakeside"}},
		Total: 1, Page: 1, Limit: 12, TotalPages: 1,
	}}
	router := newCampTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/camps?search=lake&region=alps&page=2&limit=6", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page domain.CampPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)

	assert.Equal(t, "lake", svc.lastFilter.Search)
	assert.Equal(t, "alps", svc.lastFilter.RegionSlug)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 6, svc.lastFilter.Limit)
}

func TestCampHandler_HandleGetCamp(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeCampService{camp: domain.Camp{ID: 1, Slug: "lakeside", Published: true}}
		router := newCampTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/camps/lakeside", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeCampService{err: service.ErrCampNotFound}
		router := newCampTestRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/camps/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCampHandler_HandleCreateCamp(t *testing.T) {
	validBody := `{
		"name": "Lakeside Camp",
		"slug": "lakeside-camp",
		"region_id": 1,
		"camp_type_id": 1,
		"age_min": 6,
		"age_max": 12
	}`

	t.Run("created", func(t *testing.T) {
		router := newCampTestRouter(&fakeCampService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/camps", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid slug", func(t *testing.T) {
		router := newCampTestRouter(&fakeCampService{})

		body := strings.Replace(validBody, "lakeside-camp", "Lakeside Camp!", 1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/camps", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("image host outside the allowlist", func(t *testing.T) {
		router := newCampTestRouter(&fakeCampService{})

		body := strings.Replace(validBody, `"name": "Lakeside Camp",`,
			`"name": "Lakeside Camp", "cover_image": "https://evil.example.com/x.jpg",`, 1)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/camps", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		router := newCampTestRouter(&fakeCampService{err: service.ErrCampSlugExists})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/camps", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCampHandler_HandleReplaceActivities(t *testing.T) {
	router := newCampTestRouter(&fakeCampService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/camps/3/activities",
		strings.NewReader(`{"names": ["Swimming", "Archery"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var activities []domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 2)
	assert.Equal(t, "Swimming", activities[0].Name)
}
