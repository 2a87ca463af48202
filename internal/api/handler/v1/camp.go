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

type CampService interface {
	CreateCamp(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error)
	UpdateCamp(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error)
	DeleteCamp(ctx context.Context, id uint) error
	GetCamp(ctx context.Context, id uint) (domain.Camp, error)
	GetPublishedCamp(ctx context.Context, slug string) (domain.Camp, error)
	ListPublishedCamps(ctx context.Context, filter domain.CampFilter) (domain.CampPage, error)
	ListCamps(ctx context.Context, filter domain.CampFilter) (domain.CampPage, error)
	FeaturedCamps(ctx context.Context) ([]domain.Camp, error)
	RelatedCamps(ctx context.Context, slug string) ([]domain.Camp, error)
	ReplaceSessions(ctx context.Context, campID uint, sessions []domain.CampSession) ([]domain.CampSession, error)
	ReplaceGallery(ctx context.Context, campID uint, images []domain.GalleryImage) ([]domain.GalleryImage, error)
	ReplaceActivities(ctx context.Context, campID uint, names []string) ([]domain.Activity, error)
	ReplaceFacilities(ctx context.Context, campID uint, names []string) ([]domain.Facility, error)
	ReplaceHighlights(ctx context.Context, campID uint, texts []string) ([]domain.Highlight, error)
	ReplaceFAQs(ctx context.Context, campID uint, faqs []domain.FAQ) ([]domain.FAQ, error)
	ReplaceSchedule(ctx context.Context, campID uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error)
}

type CampHandler struct {
	conf *config.APIConfig
	svc  CampService
}

func NewCampHandler(conf *config.APIConfig, svc CampService) *CampHandler {
	return &CampHandler{
		conf: conf,
		svc:  svc,
	}
}

func campFilterFromQuery(ctx *gin.Context) domain.CampFilter {
	return domain.CampFilter{
		Search:       ctx.Query("search"),
		RegionSlug:   ctx.Query("region"),
		TypeSlug:     ctx.Query("type"),
		CategorySlug: ctx.Query("category"),
		Page:         queryInt(ctx, "page", 1),
		Limit:        queryInt(ctx, "limit", 0),
	}
}

// HandleListCamps godoc
// @Summary      List published camps
// @Tags         camps
// @Produce      json
// @Param        search    query     string false "free text over name, description and city"
// @Param        region    query     string false "region slug"
// @Param        type      query     string false "camp type slug"
// @Param        category  query     string false "category slug"
// @Param        page      query     int    false "page number"
// @Param        limit     query     int    false "page size"
// @Success      200      {object}   domain.CampPage
// @Failure      500      {object}   response.Err
// @Router       /camps [get]
func (h *CampHandler) HandleListCamps(ctx *gin.Context) {
	page, err := h.svc.ListPublishedCamps(ctx.Request.Context(), campFilterFromQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListCamps -> h.svc.ListPublishedCamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleGetFeaturedCamps godoc
// @Summary      List featured camps
// @Tags         camps
// @Produce      json
// @Success      200 {array}  domain.Camp
// @Failure      500 {object} response.Err
// @Router       /camps/featured [get]
func (h *CampHandler) HandleGetFeaturedCamps(ctx *gin.Context) {
	camps, err := h.svc.FeaturedCamps(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetFeaturedCamps -> h.svc.FeaturedCamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleGetCamp godoc
// @Summary      Get a published camp by slug
// @Tags         camps
// @Produce      json
// @Param        slug  path       string true "camp slug"
// @Success      200  {object}   domain.Camp
// @Failure      404  {object}   response.Err
// @Failure      500  {object}   response.Err
// @Router       /camps/{slug} [get]
func (h *CampHandler) HandleGetCamp(ctx *gin.Context) {
	slug := ctx.Param("slug")

	camp, err := h.svc.GetPublishedCamp(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleGetCamp -> h.svc.GetPublishedCamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, camp)
}

// HandleGetRelatedCamps godoc
// @Summary      List camps related to a published camp
// @Tags         camps
// @Produce      json
// @Param        slug  path      string true "camp slug"
// @Success      200  {array}   domain.Camp
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /camps/{slug}/related [get]
func (h *CampHandler) HandleGetRelatedCamps(ctx *gin.Context) {
	slug := ctx.Param("slug")

	camps, err := h.svc.RelatedCamps(ctx.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "slug", slug))

			return
		}

		err = fmt.Errorf("v1.HandleGetRelatedCamps -> h.svc.RelatedCamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, camps)
}

// HandleAdminListCamps godoc
// @Summary      List all camps including unpublished ones
// @Tags         admin-camps
// @Produce      json
// @Success      200 {object} domain.CampPage
// @Failure      500 {object} response.Err
// @Router       /camps [get]
// @Security     BearerAuth
func (h *CampHandler) HandleAdminListCamps(ctx *gin.Context) {
	page, err := h.svc.ListCamps(ctx.Request.Context(), campFilterFromQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListCamps -> h.svc.ListCamps -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleAdminGetCamp godoc
// @Summary      Get the full camp aggregate by ID
// @Tags         admin-camps
// @Produce      json
// @Param        campID  path      int true "camp ID"
// @Success      200    {object}  domain.Camp
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /camps/{campID} [get]
// @Security     BearerAuth
func (h *CampHandler) HandleAdminGetCamp(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	camp, err := h.svc.GetCamp(ctx.Request.Context(), campID)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))

			return
		}

		err = fmt.Errorf("v1.HandleAdminGetCamp -> h.svc.GetCamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, camp)
}

// HandleCreateCamp godoc
// @Summary      Create a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        request  body      request.CampRequest true "request body"
// @Success      201     {object}  domain.Camp
// @Failure      400     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps [post]
// @Security     BearerAuth
func (h *CampHandler) HandleCreateCamp(ctx *gin.Context) {
	var req request.CampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.conf.ImageHosts); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	camp, err := h.svc.CreateCamp(ctx.Request.Context(), campFromRequest(req, 0), req.CategoryIDs)
	if err != nil {
		h.renderCampWriteErr(ctx, "v1.HandleCreateCamp -> h.svc.CreateCamp", err)

		return
	}

	ctx.JSON(http.StatusCreated, camp)
}

// HandleUpdateCamp godoc
// @Summary      Update a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                 true "camp ID"
// @Param        request  body      request.CampRequest true "request body"
// @Success      200     {object}  domain.Camp
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID} [put]
// @Security     BearerAuth
func (h *CampHandler) HandleUpdateCamp(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CampRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.conf.ImageHosts); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	camp, err := h.svc.UpdateCamp(ctx.Request.Context(), campFromRequest(req, campID), req.CategoryIDs)
	if err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))

			return
		}

		h.renderCampWriteErr(ctx, "v1.HandleUpdateCamp -> h.svc.UpdateCamp", err)

		return
	}

	ctx.JSON(http.StatusOK, camp)
}

// HandleDeleteCamp godoc
// @Summary      Delete a camp with all its child collections
// @Tags         admin-camps
// @Param        campID  path  int true "camp ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /camps/{campID} [delete]
// @Security     BearerAuth
func (h *CampHandler) HandleDeleteCamp(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteCamp(ctx.Request.Context(), campID); err != nil {
		if errors.Is(err, service.ErrCampNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCamp -> h.svc.DeleteCamp -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleReplaceSessions godoc
// @Summary      Replace all sessions of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                            true "camp ID"
// @Param        request  body      request.ReplaceSessionsRequest true "request body"
// @Success      200     {array}   domain.CampSession
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/sessions [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceSessions(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReplaceSessionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sessions := make([]domain.CampSession, len(req.Sessions))
	for i, s := range req.Sessions {
		sessions[i] = domain.CampSession{
			Name:      s.Name,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Price:     s.Price,
			Currency:  s.Currency,
		}
	}

	replaced, err := h.svc.ReplaceSessions(ctx.Request.Context(), campID, sessions)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceSessions", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceGallery godoc
// @Summary      Replace the gallery of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                           true "camp ID"
// @Param        request  body      request.ReplaceGalleryRequest true "request body"
// @Success      200     {array}   domain.GalleryImage
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/gallery [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceGallery(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReplaceGalleryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.conf.ImageHosts); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	images := make([]domain.GalleryImage, len(req.Images))
	for i, img := range req.Images {
		images[i] = domain.GalleryImage{URL: img.URL, Alt: img.Alt}
	}

	replaced, err := h.svc.ReplaceGallery(ctx.Request.Context(), campID, images)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceGallery", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceActivities godoc
// @Summary      Replace the activities of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                         true "camp ID"
// @Param        request  body      request.ReplaceNamesRequest true "request body"
// @Success      200     {array}   domain.Activity
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/activities [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceActivities(ctx *gin.Context) {
	campID, names, ok := h.bindNamesRequest(ctx)
	if !ok {
		return
	}

	replaced, err := h.svc.ReplaceActivities(ctx.Request.Context(), campID, names)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceActivities", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceFacilities godoc
// @Summary      Replace the facilities of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                         true "camp ID"
// @Param        request  body      request.ReplaceNamesRequest true "request body"
// @Success      200     {array}   domain.Facility
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/facilities [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceFacilities(ctx *gin.Context) {
	campID, names, ok := h.bindNamesRequest(ctx)
	if !ok {
		return
	}

	replaced, err := h.svc.ReplaceFacilities(ctx.Request.Context(), campID, names)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceFacilities", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceHighlights godoc
// @Summary      Replace the highlights of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                              true "camp ID"
// @Param        request  body      request.ReplaceHighlightsRequest true "request body"
// @Success      200     {array}   domain.Highlight
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/highlights [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceHighlights(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReplaceHighlightsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	replaced, err := h.svc.ReplaceHighlights(ctx.Request.Context(), campID, req.Texts)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceHighlights", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceFAQs godoc
// @Summary      Replace the FAQs of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                        true "camp ID"
// @Param        request  body      request.ReplaceFAQsRequest true "request body"
// @Success      200     {array}   domain.FAQ
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/faqs [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceFAQs(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReplaceFAQsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	faqs := make([]domain.FAQ, len(req.FAQs))
	for i, faq := range req.FAQs {
		faqs[i] = domain.FAQ{Question: faq.Question, Answer: faq.Answer}
	}

	replaced, err := h.svc.ReplaceFAQs(ctx.Request.Context(), campID, faqs)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceFAQs", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

// HandleReplaceSchedule godoc
// @Summary      Replace the daily schedule of a camp
// @Tags         admin-camps
// @Accept       json
// @Produce      json
// @Param        campID   path      int                            true "camp ID"
// @Param        request  body      request.ReplaceScheduleRequest true "request body"
// @Success      200     {array}   domain.ScheduleEntry
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /camps/{campID}/schedule [put]
// @Security     BearerAuth
func (h *CampHandler) HandleReplaceSchedule(ctx *gin.Context) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReplaceScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	entries := make([]domain.ScheduleEntry, len(req.Entries))
	for i, entry := range req.Entries {
		entries[i] = domain.ScheduleEntry{Title: entry.Title, Description: entry.Description}
	}

	replaced, err := h.svc.ReplaceSchedule(ctx.Request.Context(), campID, entries)
	if err != nil {
		h.renderReplaceErr(ctx, "v1.HandleReplaceSchedule", campID, err)

		return
	}

	ctx.JSON(http.StatusOK, replaced)
}

func (h *CampHandler) bindNamesRequest(ctx *gin.Context) (uint, []string, bool) {
	campID, err := parseIDParam(ctx, "campID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, nil, false
	}

	var req request.ReplaceNamesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, nil, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, nil, false
	}

	return campID, req.Names, true
}

func (h *CampHandler) renderCampWriteErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrCampSlugExists):
		response.RenderErr(ctx, response.ErrConflict(service.ErrCampSlugExists))
	case errors.Is(err, service.ErrCampRegionNotFound),
		errors.Is(err, service.ErrCampTypeInvalid),
		errors.Is(err, service.ErrCampCategoryInvalid):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		err = fmt.Errorf("%v -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func (h *CampHandler) renderReplaceErr(ctx *gin.Context, op string, campID uint, err error) {
	if errors.Is(err, service.ErrCampNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("camp", "ID", campID))

		return
	}

	err = fmt.Errorf("%v -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

func campFromRequest(req request.CampRequest, id uint) domain.Camp {
	return domain.Camp{
		ID:               id,
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Address:          req.Address,
		City:             req.City,
		Country:          req.Country,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		CoverImage:       req.CoverImage,
		Logo:             req.Logo,
		VideoURL:         req.VideoURL,
		Email:            req.Email,
		Phone:            req.Phone,
		Website:          req.Website,
		AgeMin:           req.AgeMin,
		AgeMax:           req.AgeMax,
		Published:        req.Published,
		Featured:         req.Featured,
		RegionID:         req.RegionID,
		CampTypeID:       req.CampTypeID,
	}
}
