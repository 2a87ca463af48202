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

type InquiryService interface {
	SubmitInquiry(ctx context.Context, campSlug string, inquiry domain.Inquiry) (domain.Inquiry, error)
	ListInquiries(ctx context.Context, status string, page, limit int) (domain.InquiryPage, error)
	UpdateInquiryStatus(ctx context.Context, id uint, status string) (domain.Inquiry, error)
}

type InquiryHandler struct {
	svc InquiryService
}

func NewInquiryHandler(svc InquiryService) *InquiryHandler {
	return &InquiryHandler{
		svc: svc,
	}
}

// HandleSubmitInquiry godoc
// @Summary      Submit an inquiry about a published camp
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        slug     path      string                      true "camp slug"
// @Param        request  body      request.SubmitInquiryRequest true "request body"
// @Success      201     {object}  domain.Inquiry
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{slug}/inquiries [post]
func (h *InquiryHandler) HandleSubmitInquiry(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var req request.SubmitInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	inquiry := domain.Inquiry{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	// Logged-in visitors get the inquiry attached to their account.
	if caller, ok := middleware.GetCaller(ctx); ok {
		inquiry.UserID = &caller.UserID
	}

	created, err := h.svc.SubmitInquiry(ctx.Request.Context(), slug, inquiry)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleSubmitInquiry -> h.svc.SubmitInquiry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListInquiries godoc
// @Summary      List inquiries with optional status filter
// @Tags         admin-inquiries
// @Produce      json
// @Param        status  query     string false "NEW, ANSWERED or ARCHIVED"
// @Param        page    query     int    false "page number"
// @Param        limit   query     int    false "page size"
// @Success      200    {object}  domain.InquiryPage
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /inquiries [get]
// @Security     BearerAuth
func (h *InquiryHandler) HandleListInquiries(ctx *gin.Context) {
	status := ctx.Query("status")
	page := queryInt(ctx, "page", 1)
	limit := queryInt(ctx, "limit", 0)

	inquiries, err := h.svc.ListInquiries(ctx.Request.Context(), status, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInquiryStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidInquiryStatus))

			return
		}

		err = fmt.Errorf("v1.HandleListInquiries -> h.svc.ListInquiries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, inquiries)
}

// HandleUpdateInquiryStatus godoc
// @Summary      Move an inquiry through its status workflow
// @Tags         admin-inquiries
// @Accept       json
// @Produce      json
// @Param        inquiryID  path      int                                true "inquiry ID"
// @Param        request    body      request.UpdateInquiryStatusRequest true "request body"
// @Success      200       {object}  domain.Inquiry
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /inquiries/{inquiryID}/status [put]
// @Security     BearerAuth
func (h *InquiryHandler) HandleUpdateInquiryStatus(ctx *gin.Context) {
	inquiryID, err := parseIDParam(ctx, "inquiryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateInquiryStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateInquiryStatus(ctx.Request.Context(), inquiryID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInquiryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("inquiry", "ID", inquiryID))
		case errors.Is(err, service.ErrInvalidInquiryStatus):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidInquiryStatus))
		default:
			err = fmt.Errorf("v1.HandleUpdateInquiryStatus -> h.svc.UpdateInquiryStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, updated)
}
