package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camlisting/camlisting/internal/api/handler/v1/request"
	"github.com/camlisting/camlisting/internal/api/handler/v1/response"
	"github.com/camlisting/camlisting/internal/api/middleware"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/service"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, campSlug string, review domain.Review) (domain.Review, error)
	ListReviews(ctx context.Context, campID uint) ([]domain.Review, error)
	SetReviewApproved(ctx context.Context, id uint, approved bool) (domain.Review, error)
	DeleteReview(ctx context.Context, id uint) error
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

// HandleSubmitReview godoc
// @Summary      Submit a review for a published camp
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        slug     path      string                      true "camp slug"
// @Param        request  body      request.SubmitReviewRequest true "request body"
// @Success      201     {object}  domain.Review
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{slug}/reviews [post]
// @Security     BearerAuth
func (h *ReviewHandler) HandleSubmitReview(ctx *gin.Context) {
	slug := ctx.Param("slug")

	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized("login required to review"))

		return
	}

	var req request.SubmitReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.SubmitReview(ctx.Request.Context(), slug, domain.Review{
		UserID:  caller.UserID,
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleSubmitReview -> h.svc.SubmitReview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListReviews godoc
// @Summary      List reviews for moderation
// @Tags         admin-reviews
// @Produce      json
// @Param        camp_id  query     int false "restrict to one camp"
// @Success      200     {array}   domain.Review
// @Failure      500     {object}  response.Err
// @Router       /reviews [get]
// @Security     BearerAuth
func (h *ReviewHandler) HandleListReviews(ctx *gin.Context) {
	campID := uint(queryInt(ctx, "camp_id", 0))

	reviews, err := h.svc.ListReviews(ctx.Request.Context(), campID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListReviews -> h.svc.ListReviews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// HandleModerateReview godoc
// @Summary      Approve or reject a review
// @Tags         admin-reviews
// @Accept       json
// @Produce      json
// @Param        reviewID  path      int                           true "review ID"
// @Param        request   body      request.ModerateReviewRequest true "request body"
// @Success      200      {object}  domain.Review
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reviews/{reviewID}/moderate [put]
// @Security     BearerAuth
func (h *ReviewHandler) HandleModerateReview(ctx *gin.Context) {
	reviewID, err := parseIDParam(ctx, "reviewID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ModerateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.SetReviewApproved(ctx.Request.Context(), reviewID, req.Approved)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("review", "ID", reviewID))

			return
		}

		err = fmt.Errorf("v1.HandleModerateReview -> h.svc.SetReviewApproved -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteReview godoc
// @Summary      Delete a review
// @Tags         admin-reviews
// @Param        reviewID  path  int true "review ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reviews/{reviewID} [delete]
// @Security     BearerAuth
func (h *ReviewHandler) HandleDeleteReview(ctx *gin.Context) {
	reviewID, err := parseIDParam(ctx, "reviewID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteReview(ctx.Request.Context(), reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("review", "ID", reviewID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteReview -> h.svc.DeleteReview -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
