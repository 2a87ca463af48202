package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camlisting/camlisting/internal/api/handler/v1/request"
	"github.com/camlisting/camlisting/internal/api/handler/v1/response"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/service"
)

type PageService interface {
	CreatePage(ctx context.Context, page domain.Page) (domain.Page, error)
	UpdatePage(ctx context.Context, page domain.Page) (domain.Page, error)
	GetPage(ctx context.Context, id uint) (domain.Page, error)
	GetPublishedPage(ctx context.Context, slug string) (domain.Page, error)
	ListPages(ctx context.Context) ([]domain.Page, error)
	DeletePage(ctx context.Context, id uint) error
}

type PageHandler struct {
	svc PageService
}

func NewPageHandler(svc PageService) *PageHandler {
	return &PageHandler{
		svc: svc,
	}
}

// HandleGetPage godoc
// @Summary      Get a published static page by slug
// @Tags         pages
// @Produce      json
// @Param        slug  path      string true "page slug"
// @Success      200  {object}  domain.Page
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /pages/{slug} [get]
func (h *PageHandler) HandleGetPage(ctx *gin.Context) {
	slug := ctx.Param("slug")

	page, err := h.svc.GetPublishedPage(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("page", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleGetPage -> h.svc.GetPublishedPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleListPages godoc
// @Summary      List all static pages
// @Tags         admin-pages
// @Produce      json
// @Success      200 {array}  domain.Page
// @Failure      500 {object} response.Err
// @Router       /pages [get]
// @Security     BearerAuth
func (h *PageHandler) HandleListPages(ctx *gin.Context) {
	pages, err := h.svc.ListPages(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPages -> h.svc.ListPages -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pages)
}

// HandleCreatePage godoc
// @Summary      Create a static page
// @Tags         admin-pages
// @Accept       json
// @Produce      json
// @Param        request  body      request.PageRequest true "request body"
// @Success      201     {object}  domain.Page
// @Failure      400     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /pages [post]
// @Security     BearerAuth
func (h *PageHandler) HandleCreatePage(ctx *gin.Context) {
	var req request.PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page, err := h.svc.CreatePage(ctx.Request.Context(), domain.Page{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrPageSlugExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrPageSlugExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreatePage -> h.svc.CreatePage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, page)
}

// HandleUpdatePage godoc
// @Summary      Update a static page
// @Tags         admin-pages
// @Accept       json
// @Produce      json
// @Param        pageID   path      int                 true "page ID"
// @Param        request  body      request.PageRequest true "request body"
// @Success      200     {object}  domain.Page
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /pages/{pageID} [put]
// @Security     BearerAuth
func (h *PageHandler) HandleUpdatePage(ctx *gin.Context) {
	pageID, err := parseIDParam(ctx, "pageID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.PageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	page, err := h.svc.UpdatePage(ctx.Request.Context(), domain.Page{
		ID:        pageID,
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageNotFound):
			response.RenderErr(ctx, response.ErrNotFound("page", "ID", pageID))
		case errors.Is(err, service.ErrPageSlugExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrPageSlugExists))
		default:
			err = fmt.Errorf("v1.HandleUpdatePage -> h.svc.UpdatePage -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleDeletePage godoc
// @Summary      Delete a static page
// @Tags         admin-pages
// @Param        pageID  path  int true "page ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /pages/{pageID} [delete]
// @Security     BearerAuth
func (h *PageHandler) HandleDeletePage(ctx *gin.Context) {
	pageID, err := parseIDParam(ctx, "pageID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeletePage(ctx.Request.Context(), pageID); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("page", "ID", pageID))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePage -> h.svc.DeletePage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
