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

	"github.com/camlisting/camlisting/internal/api/middleware"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/service"
)

type fakeReviewService struct {
	review domain.Review
	err    error
}

func (f *fakeReviewService) SubmitReview(_ context.Context, _ string, review domain.Review) (domain.Review, error) {
	if f.err != nil {
		return domain.Review{}, f.err
	}
	review.ID = 1

	return review, nil
}

func (f *fakeReviewService) ListReviews(_ context.Context, _ uint) ([]domain.Review, error) {
	return []domain.Review{f.review}, f.err
}

func (f *fakeReviewService) SetReviewApproved(_ context.Context, _ uint, approved bool) (domain.Review, error) {
	review := f.review
	review.Approved = approved

	return review, f.err
}

func (f *fakeReviewService) DeleteReview(_ context.Context, _ uint) error {
	return f.err
}

// asCaller injects an authenticated caller the way the JWT middleware does.
func asCaller(caller domain.Caller) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.CallerKey, caller)
		ctx.Next()
	}
}

func newReviewTestRouter(svc ReviewService, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewReviewHandler(svc)

	router := gin.New()
	router.Use(handlers...)
	router.POST("/camps/:slug/reviews", handler.HandleSubmitReview)
	router.PUT("/admin/reviews/:reviewID/moderate", handler.HandleModerateReview)

	return router
}

func TestReviewHandler_HandleSubmitReview(t *testing.T) {
	body := `{"rating": 5, "title": "Great week", "comment": "Our kids loved it."}`

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		router := newReviewTestRouter(&fakeReviewService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/camps/lakeside/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("created for an authenticated caller", func(t *testing.T) {
		router := newReviewTestRouter(&fakeReviewService{},
			asCaller(domain.Caller{UserID: 7, Role: domain.RoleUser}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/camps/lakeside/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var review domain.Review
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
		assert.Equal(t, uint(7), review.UserID)
		assert.False(t, review.Approved)
	})

	t.Run("rating out of range", func(t *testing.T) {
		router := newReviewTestRouter(&fakeReviewService{},
			asCaller(domain.Caller{UserID: 7, Role: domain.RoleUser}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/camps/lakeside/reviews",
			strings.NewReader(`{"rating": 6, "comment": "too good"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown camp", func(t *testing.T) {
		router := newReviewTestRouter(&fakeReviewService{err: service.ErrCampNotFound},
			asCaller(domain.Caller{UserID: 7, Role: domain.RoleUser}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/camps/gone/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_HandleModerateReview(t *testing.T) {
	svc := &fakeReviewService{review: domain.Review{ID: 3, Rating: 4}}
	router := newReviewTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/reviews/3/moderate",
		strings.NewReader(`{"approved": true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var review domain.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.True(t, review.Approved)
}
