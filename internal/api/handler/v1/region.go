package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camlisting/camlisting/internal/api/handler/v1/request"
	"github.com/camlisting/camlisting/internal/api/handler/v1/response"
	"github.com/camlisting/camlisting/internal/config"
	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/service"
)

type RegionService interface {
	CreateRegion(ctx context.Context, region domain.Region) (domain.Region, error)
	UpdateRegion(ctx context.Context, region domain.Region) (domain.Region, error)
	DeleteRegion(ctx context.Context, id uint) error
	GetRegion(ctx context.Context, id uint) (domain.Region, error)
	GetRegionBySlug(ctx context.Context, slug string) (domain.Region, error)
	GetTree(ctx context.Context) ([]domain.Region, error)
}

type RegionHandler struct {
	conf *config.APIConfig
	svc  RegionService
}

func NewRegionHandler(conf *config.APIConfig, svc RegionService) *RegionHandler {
	return &RegionHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleGetRegionTree godoc
// @Summary      Get the region tree with published camp counts
// @Tags         regions
// @Produce      json
// @Success      200 {array}  domain.Region
// @Failure      500 {object} response.Err
// @Router       /regions [get]
func (h *RegionHandler) HandleGetRegionTree(ctx *gin.Context) {
	tree, err := h.svc.GetTree(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetRegionTree -> h.svc.GetTree -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tree)
}

// HandleGetRegion godoc
// @Summary      Get a region by slug with its parent and children
// @Tags         regions
// @Produce      json
// @Param        slug  path      string true "region slug"
// @Success      200  {object}  domain.Region
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /regions/{slug} [get]
func (h *RegionHandler) HandleGetRegion(ctx *gin.Context) {
	slug := ctx.Param("slug")

	region, err := h.svc.GetRegionBySlug(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("region", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleGetRegion -> h.svc.GetRegionBySlug -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, region)
}

// HandleCreateRegion godoc
// @Summary      Create a region
// @Tags         admin-regions
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegionRequest true "request body"
// @Success      201     {object}  domain.Region
// @Failure      400     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /regions [post]
// @Security     BearerAuth
func (h *RegionHandler) HandleCreateRegion(ctx *gin.Context) {
	var req request.RegionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.conf.ImageHosts); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	region, err := h.svc.CreateRegion(ctx.Request.Context(), regionFromRequest(req, 0))
	if err != nil {
		h.renderRegionWriteErr(ctx, "v1.HandleCreateRegion -> h.svc.CreateRegion", err)

		return
	}

	ctx.JSON(http.StatusCreated, region)
}

// HandleUpdateRegion godoc
// @Summary      Update a region
// @Tags         admin-regions
// @Accept       json
// @Produce      json
// @Param        regionID  path      int                   true "region ID"
// @Param        request   body      request.RegionRequest true "request body"
// @Success      200      {object}  domain.Region
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /regions/{regionID} [put]
// @Security     BearerAuth
func (h *RegionHandler) HandleUpdateRegion(ctx *gin.Context) {
	regionID, err := parseIDParam(ctx, "regionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.RegionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.conf.ImageHosts); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	region, err := h.svc.UpdateRegion(ctx.Request.Context(), regionFromRequest(req, regionID))
	if err != nil {
		if errors.Is(err, service.ErrRegionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("region", "ID", regionID))

			return
		}

		h.renderRegionWriteErr(ctx, "v1.HandleUpdateRegion -> h.svc.UpdateRegion", err)

		return
	}

	ctx.JSON(http.StatusOK, region)
}

// HandleDeleteRegion godoc
// @Summary      Delete a region without children or camps
// @Tags         admin-regions
// @Param        regionID  path  int true "region ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /regions/{regionID} [delete]
// @Security     BearerAuth
func (h *RegionHandler) HandleDeleteRegion(ctx *gin.Context) {
	regionID, err := parseIDParam(ctx, "regionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteRegion(ctx.Request.Context(), regionID); err != nil {
		switch {
		case errors.Is(err, service.ErrRegionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("region", "ID", regionID))
		case errors.Is(err, service.ErrRegionHasChildren):
			response.RenderErr(ctx, response.ErrConflict(service.ErrRegionHasChildren))
		case errors.Is(err, service.ErrRegionHasCamps):
			response.RenderErr(ctx, response.ErrConflict(service.ErrRegionHasCamps))
		default:
			err = fmt.Errorf("v1.HandleDeleteRegion -> h.svc.DeleteRegion -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *RegionHandler) renderRegionWriteErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrRegionSlugExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrRegionSlugExists))
	case errors.Is(err, service.ErrRegionOwnParent),
		errors.Is(err, service.ErrRegionParentNotFound):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func regionFromRequest(req request.RegionRequest, id uint) domain.Region {
	return domain.Region{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
	}
}
