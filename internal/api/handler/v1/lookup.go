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

type LookupService interface {
	CreateType(ctx context.Context, ct domain.CampType) (domain.CampType, error)
	UpdateType(ctx context.Context, ct domain.CampType) (domain.CampType, error)
	GetTypeBySlug(ctx context.Context, slug string) (domain.CampType, error)
	ListTypes(ctx context.Context) ([]domain.CampType, error)
	DeleteType(ctx context.Context, id uint) error
	CreateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error)
	UpdateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error)
	ListCategories(ctx context.Context) ([]domain.CampCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type LookupHandler struct {
	svc LookupService
}

func NewLookupHandler(svc LookupService) *LookupHandler {
	return &LookupHandler{
		svc: svc,
	}
}

// HandleListCampTypes godoc
// @Summary      List camp types with published camp counts
// @Tags         camp-types
// @Produce      json
// @Success      200 {array}  domain.CampType
// @Failure      500 {object} response.Err
// @Router       /camp-types [get]
func (h *LookupHandler) HandleListCampTypes(ctx *gin.Context) {
	types, err := h.svc.ListTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampTypes -> h.svc.ListTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleGetCampType godoc
// @Summary      Get a camp type by slug
// @Tags         camp-types
// @Produce      json
// @Param        slug  path       string true "camp type slug"
// @Success      200  {object}   domain.CampType
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /camp-types/{slug} [get]
func (h *LookupHandler) HandleGetCampType(ctx *gin.Context) {
	slug := ctx.Param("slug")

	ct, err := h.svc.GetTypeBySlug(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrCampTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp type", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleGetCampType -> h.svc.GetTypeBySlug -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ct)
}

// HandleListCategories godoc
// @Summary      List camp categories with published camp counts
// @Tags         categories
// @Produce      json
// @Success      200 {array}  domain.CampCategory
// @Failure      500 {object} response.Err
// @Router       /categories [get]
func (h *LookupHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleCreateCampType godoc
// @Summary      Create a camp type
// @Tags         admin-lookups
// @Accept       json
// @Produce      json
// @Param        request  body      request.CampTypeRequest true "request body"
// @Success      201     {object}  domain.CampType
// @Failure      400     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camp-types [post]
// @Security     BearerAuth
func (h *LookupHandler) HandleCreateCampType(ctx *gin.Context) {
	var req request.CampTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ct, err := h.svc.CreateType(ctx.Request.Context(), domain.CampType{
		Name:      req.Name,
		Slug:      req.Slug,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampTypeSlugExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCampTypeSlugExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCampType -> h.svc.CreateType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, ct)
}

// HandleUpdateCampType godoc
// @Summary      Update a camp type
// @Tags         admin-lookups
// @Accept       json
// @Produce      json
// @Param        typeID   path      int                     true "camp type ID"
// @Param        request  body      request.CampTypeRequest true "request body"
// @Success      200     {object}  domain.CampType
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camp-types/{typeID} [put]
// @Security     BearerAuth
func (h *LookupHandler) HandleUpdateCampType(ctx *gin.Context) {
	typeID, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CampTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ct, err := h.svc.UpdateType(ctx.Request.Context(), domain.CampType{
		ID:        typeID,
		Name:      req.Name,
		Slug:      req.Slug,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCampTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("camp type", "ID", typeID))
		case errors.Is(err, service.ErrCampTypeSlugExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCampTypeSlugExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateCampType -> h.svc.UpdateType -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, ct)
}

// HandleDeleteCampType godoc
// @Summary      Delete an unused camp type
// @Tags         admin-lookups
// @Param        typeID  path  int true "camp type ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /camp-types/{typeID} [delete]
// @Security     BearerAuth
func (h *LookupHandler) HandleDeleteCampType(ctx *gin.Context) {
	typeID, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteType(ctx.Request.Context(), typeID); err != nil {
		switch {
		case errors.Is(err, service.ErrCampTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("camp type", "ID", typeID))
		case errors.Is(err, service.ErrCampTypeInUse):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCampTypeInUse))
		default:
			err = fmt.Errorf("v1.HandleDeleteCampType -> h.svc.DeleteType -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateCategory godoc
// @Summary      Create a camp category
// @Tags         admin-lookups
// @Accept       json
// @Produce      json
// @Param        request  body      request.CampCategoryRequest true "request body"
// @Success      201     {object}  domain.CampCategory
// @Failure      400     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /categories [post]
// @Security     BearerAuth
func (h *LookupHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CampCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cat, err := h.svc.CreateCategory(ctx.Request.Context(), domain.CampCategory{
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategorySlugExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCategorySlugExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, cat)
}

// HandleUpdateCategory godoc
// @Summary      Update a camp category
// @Tags         admin-lookups
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int                         true "category ID"
// @Param        request     body      request.CampCategoryRequest true "request body"
// @Success      200        {object}  domain.CampCategory
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /categories/{categoryID} [put]
// @Security     BearerAuth
func (h *LookupHandler) HandleUpdateCategory(ctx *gin.Context) {
	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CampCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cat, err := h.svc.UpdateCategory(ctx.Request.Context(), domain.CampCategory{
		ID:        categoryID,
		Name:      req.Name,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID))
		case errors.Is(err, service.ErrCategorySlugExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCategorySlugExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, cat)
}

// HandleDeleteCategory godoc
// @Summary      Delete an unused camp category
// @Tags         admin-lookups
// @Param        categoryID  path  int true "category ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /categories/{categoryID} [delete]
// @Security     BearerAuth
func (h *LookupHandler) HandleDeleteCategory(ctx *gin.Context) {
	categoryID, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID))
		case errors.Is(err, service.ErrCategoryInUse):
			response.RenderErr(ctx, response.ErrConflict(service.ErrCategoryInUse))
		default:
			err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
