package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var (
	ErrCampNotFound        = repository.ErrCampNotFound
	ErrCampSlugExists      = repository.ErrCampSlugExists
	ErrCampRegionNotFound  = errors.New("camp region not found")
	ErrCampTypeInvalid     = errors.New("camp type not found")
	ErrCampCategoryInvalid = errors.New("camp category not found")
)

const (
	defaultPublicPageSize = 12
	defaultAdminPageSize  = 20
	maxPageSize           = 50

	featuredCampLimit = 6
	relatedCampLimit  = 4

	// Listing cards show at most this many upcoming sessions per camp.
	listingSessionLimit = 3
)

type CampRepository interface {
	Create(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error)
	Update(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.Camp, error)
	FindBySlug(ctx context.Context, slug string, now time.Time) (domain.Camp, error)
	FindPage(ctx context.Context, filter domain.CampFilter, now time.Time) ([]domain.Camp, int64, error)
	FindFeatured(ctx context.Context, now time.Time, limit int) ([]domain.Camp, error)
	FindRelated(ctx context.Context, campID, regionID, campTypeID uint, now time.Time, limit int) ([]domain.Camp, error)
	ReplaceSessions(ctx context.Context, campID uint, sessions []domain.CampSession) ([]domain.CampSession, error)
	ReplaceGallery(ctx context.Context, campID uint, images []domain.GalleryImage) ([]domain.GalleryImage, error)
	ReplaceActivities(ctx context.Context, campID uint, names []string) ([]domain.Activity, error)
	ReplaceFacilities(ctx context.Context, campID uint, names []string) ([]domain.Facility, error)
	ReplaceHighlights(ctx context.Context, campID uint, texts []string) ([]domain.Highlight, error)
	ReplaceFAQs(ctx context.Context, campID uint, faqs []domain.FAQ) ([]domain.FAQ, error)
	ReplaceSchedule(ctx context.Context, campID uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error)
}

type CampRegionReader interface {
	FindByID(ctx context.Context, id uint) (domain.Region, error)
}

type CampLookupReader interface {
	FindTypeByID(ctx context.Context, id uint) (domain.CampType, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.CampCategory, error)
}

type CampService struct {
	repo    CampRepository
	regions CampRegionReader
	lookups CampLookupReader

	now func() time.Time
}

func NewCampService(repo CampRepository, regions CampRegionReader, lookups CampLookupReader) *CampService {
	return &CampService{
		repo:    repo,
		regions: regions,
		lookups: lookups,
		now:     time.Now,
	}
}

func (s *CampService) CreateCamp(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error) {
	if err := s.checkReferences(ctx, camp, categoryIDs); err != nil {
		return domain.Camp{}, err
	}

	created, err := s.repo.Create(ctx, camp, categoryIDs)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampService) UpdateCamp(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error) {
	if _, err := s.repo.FindByID(ctx, camp.ID); err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.checkReferences(ctx, camp, categoryIDs); err != nil {
		return domain.Camp{}, err
	}

	updated, err := s.repo.Update(ctx, camp, categoryIDs)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CampService) checkReferences(ctx context.Context, camp domain.Camp, categoryIDs []uint) error {
	if _, err := s.regions.FindByID(ctx, camp.RegionID); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return ErrCampRegionNotFound
		}

		return fmt.Errorf("s.regions.FindByID -> %w", err)
	}

	if _, err := s.lookups.FindTypeByID(ctx, camp.CampTypeID); err != nil {
		if errors.Is(err, repository.ErrCampTypeNotFound) {
			return ErrCampTypeInvalid
		}

		return fmt.Errorf("s.lookups.FindTypeByID -> %w", err)
	}

	for _, id := range categoryIDs {
		if _, err := s.lookups.FindCategoryByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return ErrCampCategoryInvalid
			}

			return fmt.Errorf("s.lookups.FindCategoryByID -> %w", err)
		}
	}

	return nil
}

func (s *CampService) DeleteCamp(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// GetCamp returns the full aggregate regardless of publication state.
func (s *CampService) GetCamp(ctx context.Context, id uint) (domain.Camp, error) {
	camp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return camp, nil
}

// GetPublishedCamp serves the public detail view. Unpublished camps are
// indistinguishable from missing ones.
func (s *CampService) GetPublishedCamp(ctx context.Context, slug string) (domain.Camp, error) {
	camp, err := s.repo.FindBySlug(ctx, slug, s.now())
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.FindBySlug -> %w", err)
	}

	if !camp.Published {
		return domain.Camp{}, ErrCampNotFound
	}

	return camp, nil
}

// ListPublishedCamps serves the public directory. All filter predicates
// present on the filter are combined; absent ones are ignored.
func (s *CampService) ListPublishedCamps(ctx context.Context, filter domain.CampFilter) (domain.CampPage, error) {
	filter.PublishedOnly = true
	normalizePaging(&filter, defaultPublicPageSize)

	camps, total, err := s.repo.FindPage(ctx, filter, s.now())
	if err != nil {
		return domain.CampPage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	for i := range camps {
		if len(camps[i].Sessions) > listingSessionLimit {
			camps[i].Sessions = camps[i].Sessions[:listingSessionLimit]
		}
	}

	return newCampPage(camps, total, filter), nil
}

// ListCamps serves the back office and includes unpublished camps.
func (s *CampService) ListCamps(ctx context.Context, filter domain.CampFilter) (domain.CampPage, error) {
	filter.PublishedOnly = false
	normalizePaging(&filter, defaultAdminPageSize)

	camps, total, err := s.repo.FindPage(ctx, filter, s.now())
	if err != nil {
		return domain.CampPage{}, fmt.Errorf("s.repo.FindPage -> %w", err)
	}

	return newCampPage(camps, total, filter), nil
}

func (s *CampService) FeaturedCamps(ctx context.Context) ([]domain.Camp, error) {
	camps, err := s.repo.FindFeatured(ctx, s.now(), featuredCampLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFeatured -> %w", err)
	}

	return camps, nil
}

// RelatedCamps returns published camps sharing the subject's region or
// type, never the subject itself.
func (s *CampService) RelatedCamps(ctx context.Context, slug string) ([]domain.Camp, error) {
	camp, err := s.GetPublishedCamp(ctx, slug)
	if err != nil {
		return nil, err
	}

	camps, err := s.repo.FindRelated(ctx, camp.ID, camp.RegionID, camp.CampTypeID, s.now(), relatedCampLimit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRelated -> %w", err)
	}

	return camps, nil
}

func (s *CampService) ReplaceSessions(ctx context.Context, campID uint, sessions []domain.CampSession) ([]domain.CampSession, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceSessions(ctx, campID, sessions)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceSessions -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceGallery(ctx context.Context, campID uint, images []domain.GalleryImage) ([]domain.GalleryImage, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceGallery(ctx, campID, images)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceGallery -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceActivities(ctx context.Context, campID uint, names []string) ([]domain.Activity, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceActivities(ctx, campID, names)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceActivities -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceFacilities(ctx context.Context, campID uint, names []string) ([]domain.Facility, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceFacilities(ctx, campID, names)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceFacilities -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceHighlights(ctx context.Context, campID uint, texts []string) ([]domain.Highlight, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceHighlights(ctx, campID, texts)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceHighlights -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceFAQs(ctx context.Context, campID uint, faqs []domain.FAQ) ([]domain.FAQ, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceFAQs(ctx, campID, faqs)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceFAQs -> %w", err)
	}

	return replaced, nil
}

func (s *CampService) ReplaceSchedule(ctx context.Context, campID uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	if _, err := s.repo.FindByID(ctx, campID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	replaced, err := s.repo.ReplaceSchedule(ctx, campID, entries)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ReplaceSchedule -> %w", err)
	}

	return replaced, nil
}

func normalizePaging(filter *domain.CampFilter, defaultLimit int) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
}

func newCampPage(camps []domain.Camp, total int64, filter domain.CampFilter) domain.CampPage {
	return domain.CampPage{
		Camps:      camps,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
	}
}
