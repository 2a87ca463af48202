package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var (
	ErrCampNotFound   = dao.ErrCampNotFound
	ErrCampSlugExists = dao.ErrCampSlugExists
)

type CampDAO interface {
	Insert(ctx context.Context, camp dao.Camp, categoryIDs []uint) (dao.Camp, error)
	Update(ctx context.Context, camp dao.Camp, categoryIDs []uint) (dao.Camp, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (dao.Camp, error)
	FindBySlug(ctx context.Context, slug string, now time.Time) (dao.Camp, error)
	FindSummaryBySlug(ctx context.Context, slug string) (dao.Camp, error)
	FindPage(ctx context.Context, filter dao.CampFilter, now time.Time) ([]dao.Camp, int64, error)
	FindFeatured(ctx context.Context, now time.Time, limit int) ([]dao.Camp, error)
	FindRelated(ctx context.Context, campID, regionID, campTypeID uint, now time.Time, limit int) ([]dao.Camp, error)
	ReplaceSessions(ctx context.Context, campID uint, rows []dao.CampSession) ([]dao.CampSession, error)
	ReplaceGallery(ctx context.Context, campID uint, rows []dao.GalleryImage) ([]dao.GalleryImage, error)
	ReplaceActivities(ctx context.Context, campID uint, rows []dao.Activity) ([]dao.Activity, error)
	ReplaceFacilities(ctx context.Context, campID uint, rows []dao.Facility) ([]dao.Facility, error)
	ReplaceHighlights(ctx context.Context, campID uint, rows []dao.Highlight) ([]dao.Highlight, error)
	ReplaceFAQs(ctx context.Context, campID uint, rows []dao.FAQ) ([]dao.FAQ, error)
	ReplaceSchedule(ctx context.Context, campID uint, rows []dao.ScheduleEntry) ([]dao.ScheduleEntry, error)
}

type CampRepository struct {
	dao CampDAO
}

func NewCampRepository(dao CampDAO) *CampRepository {
	return &CampRepository{
		dao: dao,
	}
}

func (r *CampRepository) Create(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(camp), categoryIDs)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampRepository) Update(ctx context.Context, camp domain.Camp, categoryIDs []uint) (domain.Camp, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(camp), categoryIDs)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CampRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CampRepository) FindByID(ctx context.Context, id uint) (domain.Camp, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampRepository) FindBySlug(ctx context.Context, slug string, now time.Time) (domain.Camp, error) {
	found, err := r.dao.FindBySlug(ctx, slug, now)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.FindBySlug -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampRepository) FindSummaryBySlug(ctx context.Context, slug string) (domain.Camp, error) {
	found, err := r.dao.FindSummaryBySlug(ctx, slug)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("r.dao.FindSummaryBySlug -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampRepository) FindPage(ctx context.Context, filter domain.CampFilter, now time.Time) ([]domain.Camp, int64, error) {
	found, total, err := r.dao.FindPage(ctx, dao.CampFilter{
		Search:        filter.Search,
		RegionSlug:    filter.RegionSlug,
		TypeSlug:      filter.TypeSlug,
		CategorySlug:  filter.CategorySlug,
		PublishedOnly: filter.PublishedOnly,
		Page:          filter.Page,
		Limit:         filter.Limit,
	}, now)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindPage -> %w", err)
	}

	return r.daosToDomain(found), total, nil
}

func (r *CampRepository) FindFeatured(ctx context.Context, now time.Time, limit int) ([]domain.Camp, error) {
	found, err := r.dao.FindFeatured(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFeatured -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CampRepository) FindRelated(ctx context.Context, campID, regionID, campTypeID uint, now time.Time, limit int) ([]domain.Camp, error) {
	found, err := r.dao.FindRelated(ctx, campID, regionID, campTypeID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRelated -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CampRepository) ReplaceSessions(ctx context.Context, campID uint, sessions []domain.CampSession) ([]domain.CampSession, error) {
	rows := make([]dao.CampSession, len(sessions))
	for i, s := range sessions {
		rows[i] = dao.CampSession{
			CampID:    campID,
			Name:      s.Name,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Price:     s.Price,
			Currency:  s.Currency,
			SortOrder: i,
		}
	}

	created, err := r.dao.ReplaceSessions(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceSessions -> %w", err)
	}

	return sessionsDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceGallery(ctx context.Context, campID uint, images []domain.GalleryImage) ([]domain.GalleryImage, error) {
	rows := make([]dao.GalleryImage, len(images))
	for i, img := range images {
		rows[i] = dao.GalleryImage{CampID: campID, URL: img.URL, Alt: img.Alt, SortOrder: i}
	}

	created, err := r.dao.ReplaceGallery(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceGallery -> %w", err)
	}

	return galleryDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceActivities(ctx context.Context, campID uint, names []string) ([]domain.Activity, error) {
	rows := make([]dao.Activity, len(names))
	for i, name := range names {
		rows[i] = dao.Activity{CampID: campID, Name: name, SortOrder: i}
	}

	created, err := r.dao.ReplaceActivities(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceActivities -> %w", err)
	}

	return activitiesDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceFacilities(ctx context.Context, campID uint, names []string) ([]domain.Facility, error) {
	rows := make([]dao.Facility, len(names))
	for i, name := range names {
		rows[i] = dao.Facility{CampID: campID, Name: name, SortOrder: i}
	}

	created, err := r.dao.ReplaceFacilities(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceFacilities -> %w", err)
	}

	return facilitiesDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceHighlights(ctx context.Context, campID uint, texts []string) ([]domain.Highlight, error) {
	rows := make([]dao.Highlight, len(texts))
	for i, text := range texts {
		rows[i] = dao.Highlight{CampID: campID, Text: text, SortOrder: i}
	}

	created, err := r.dao.ReplaceHighlights(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceHighlights -> %w", err)
	}

	return highlightsDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceFAQs(ctx context.Context, campID uint, faqs []domain.FAQ) ([]domain.FAQ, error) {
	rows := make([]dao.FAQ, len(faqs))
	for i, faq := range faqs {
		rows[i] = dao.FAQ{CampID: campID, Question: faq.Question, Answer: faq.Answer, SortOrder: i}
	}

	created, err := r.dao.ReplaceFAQs(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceFAQs -> %w", err)
	}

	return faqsDaoToDomain(created), nil
}

func (r *CampRepository) ReplaceSchedule(ctx context.Context, campID uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	rows := make([]dao.ScheduleEntry, len(entries))
	for i, entry := range entries {
		rows[i] = dao.ScheduleEntry{CampID: campID, Title: entry.Title, Description: entry.Description, SortOrder: i}
	}

	created, err := r.dao.ReplaceSchedule(ctx, campID, rows)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReplaceSchedule -> %w", err)
	}

	return scheduleDaoToDomain(created), nil
}

func (r *CampRepository) domainToDao(camp domain.Camp) dao.Camp {
	return dao.Camp{
		ID:               camp.ID,
		Name:             camp.Name,
		Slug:             camp.Slug,
		Description:      camp.Description,
		ShortDescription: camp.ShortDescription,
		Address:          camp.Address,
		City:             camp.City,
		Country:          camp.Country,
		Latitude:         camp.Latitude,
		Longitude:        camp.Longitude,
		CoverImage:       camp.CoverImage,
		Logo:             camp.Logo,
		VideoURL:         camp.VideoURL,
		Email:            camp.Email,
		Phone:            camp.Phone,
		Website:          camp.Website,
		AgeMin:           camp.AgeMin,
		AgeMax:           camp.AgeMax,
		Published:        camp.Published,
		Featured:         camp.Featured,
		RegionID:         camp.RegionID,
		CampTypeID:       camp.CampTypeID,
		OwnerID:          camp.OwnerID,
	}
}

func (r *CampRepository) daosToDomain(camps []dao.Camp) []domain.Camp {
	result := make([]domain.Camp, len(camps))
	for i, camp := range camps {
		result[i] = r.daoToDomain(camp)
	}

	return result
}

func (r *CampRepository) daoToDomain(camp dao.Camp) domain.Camp {
	result := domain.Camp{
		ID:               camp.ID,
		Name:             camp.Name,
		Slug:             camp.Slug,
		Description:      camp.Description,
		ShortDescription: camp.ShortDescription,
		Address:          camp.Address,
		City:             camp.City,
		Country:          camp.Country,
		Latitude:         camp.Latitude,
		Longitude:        camp.Longitude,
		CoverImage:       camp.CoverImage,
		Logo:             camp.Logo,
		VideoURL:         camp.VideoURL,
		Email:            camp.Email,
		Phone:            camp.Phone,
		Website:          camp.Website,
		AgeMin:           camp.AgeMin,
		AgeMax:           camp.AgeMax,
		Published:        camp.Published,
		Featured:         camp.Featured,
		RegionID:         camp.RegionID,
		CampTypeID:       camp.CampTypeID,
		OwnerID:          camp.OwnerID,
		CreatedAt:        camp.CreatedAt,
		UpdatedAt:        camp.UpdatedAt,
		Sessions:         sessionsDaoToDomain(camp.Sessions),
		Gallery:          galleryDaoToDomain(camp.Gallery),
		Activities:       activitiesDaoToDomain(camp.Activities),
		Facilities:       facilitiesDaoToDomain(camp.Facilities),
		Highlights:       highlightsDaoToDomain(camp.Highlights),
		FAQs:             faqsDaoToDomain(camp.FAQs),
		Schedule:         scheduleDaoToDomain(camp.Schedule),
		Reviews:          reviewsDaoToDomain(camp.Reviews),
	}

	if camp.Region.ID != 0 {
		region := domain.Region{
			ID:        camp.Region.ID,
			Name:      camp.Region.Name,
			Slug:      camp.Region.Slug,
			ParentID:  camp.Region.ParentID,
			SortOrder: camp.Region.SortOrder,
		}
		result.Region = &region
	}
	if camp.CampType.ID != 0 {
		ct := typeDaoToDomain(camp.CampType)
		result.CampType = &ct
	}
	if len(camp.Categories) > 0 {
		result.Categories = make([]domain.CampCategory, len(camp.Categories))
		for i, cat := range camp.Categories {
			result.Categories[i] = categoryDaoToDomain(cat)
		}
	}

	return result
}

func sessionsDaoToDomain(rows []dao.CampSession) []domain.CampSession {
	if len(rows) == 0 {
		return nil
	}

	sessions := make([]domain.CampSession, len(rows))
	for i, s := range rows {
		sessions[i] = domain.CampSession{
			ID:        s.ID,
			CampID:    s.CampID,
			Name:      s.Name,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Price:     s.Price,
			Currency:  s.Currency,
			SortOrder: s.SortOrder,
		}
	}

	return sessions
}

func galleryDaoToDomain(rows []dao.GalleryImage) []domain.GalleryImage {
	if len(rows) == 0 {
		return nil
	}

	images := make([]domain.GalleryImage, len(rows))
	for i, img := range rows {
		images[i] = domain.GalleryImage{ID: img.ID, CampID: img.CampID, URL: img.URL, Alt: img.Alt, SortOrder: img.SortOrder}
	}

	return images
}

func activitiesDaoToDomain(rows []dao.Activity) []domain.Activity {
	if len(rows) == 0 {
		return nil
	}

	activities := make([]domain.Activity, len(rows))
	for i, a := range rows {
		activities[i] = domain.Activity{ID: a.ID, CampID: a.CampID, Name: a.Name, SortOrder: a.SortOrder}
	}

	return activities
}

func facilitiesDaoToDomain(rows []dao.Facility) []domain.Facility {
	if len(rows) == 0 {
		return nil
	}

	facilities := make([]domain.Facility, len(rows))
	for i, f := range rows {
		facilities[i] = domain.Facility{ID: f.ID, CampID: f.CampID, Name: f.Name, SortOrder: f.SortOrder}
	}

	return facilities
}

func highlightsDaoToDomain(rows []dao.Highlight) []domain.Highlight {
	if len(rows) == 0 {
		return nil
	}

	highlights := make([]domain.Highlight, len(rows))
	for i, h := range rows {
		highlights[i] = domain.Highlight{ID: h.ID, CampID: h.CampID, Text: h.Text, SortOrder: h.SortOrder}
	}

	return highlights
}

func faqsDaoToDomain(rows []dao.FAQ) []domain.FAQ {
	if len(rows) == 0 {
		return nil
	}

	faqs := make([]domain.FAQ, len(rows))
	for i, f := range rows {
		faqs[i] = domain.FAQ{ID: f.ID, CampID: f.CampID, Question: f.Question, Answer: f.Answer, SortOrder: f.SortOrder}
	}

	return faqs
}

func scheduleDaoToDomain(rows []dao.ScheduleEntry) []domain.ScheduleEntry {
	if len(rows) == 0 {
		return nil
	}

	entries := make([]domain.ScheduleEntry, len(rows))
	for i, e := range rows {
		entries[i] = domain.ScheduleEntry{ID: e.ID, CampID: e.CampID, Title: e.Title, Description: e.Description, SortOrder: e.SortOrder}
	}

	return entries
}

func reviewsDaoToDomain(rows []dao.Review) []domain.Review {
	if len(rows) == 0 {
		return nil
	}

	reviews := make([]domain.Review, len(rows))
	for i, rev := range rows {
		reviews[i] = reviewDaoToDomain(rev)
	}

	return reviews
}

func reviewDaoToDomain(rev dao.Review) domain.Review {
	review := domain.Review{
		ID:        rev.ID,
		CampID:    rev.CampID,
		UserID:    rev.UserID,
		Rating:    rev.Rating,
		Title:     rev.Title,
		Comment:   rev.Comment,
		Approved:  rev.Approved,
		CreatedAt: rev.CreatedAt,
	}

	if rev.Author.ID != 0 {
		review.Author = &domain.User{
			ID:        rev.Author.ID,
			FirstName: rev.Author.FirstName,
			LastName:  rev.Author.LastName,
			Image:     rev.Author.Image,
		}
	}

	return review
}
