package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

type fakeCampRepo struct {
	camps  map[uint]domain.Camp
	bySlug map[string]domain.Camp

	lastFilter domain.CampFilter
	pageCamps  []domain.Camp
	pageTotal  int64

	relatedArgs []uint
}

func newFakeCampRepo() *fakeCampRepo {
	return &fakeCampRepo{
		camps:  make(map[uint]domain.Camp),
		bySlug: make(map[string]domain.Camp),
	}
}

func (f *fakeCampRepo) add(camp domain.Camp) {
	f.camps[camp.ID] = camp
	f.bySlug[camp.Slug] = camp
}

func (f *fakeCampRepo) Create(_ context.Context, camp domain.Camp, _ []uint) (domain.Camp, error) {
	camp.ID = uint(len(f.camps) + 1)
	f.add(camp)

	return camp, nil
}

func (f *fakeCampRepo) Update(_ context.Context, camp domain.Camp, _ []uint) (domain.Camp, error) {
	f.add(camp)

	return camp, nil
}

func (f *fakeCampRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.camps[id]; !ok {
		return repository.ErrCampNotFound
	}
	delete(f.camps, id)

	return nil
}

func (f *fakeCampRepo) FindByID(_ context.Context, id uint) (domain.Camp, error) {
	camp, ok := f.camps[id]
	if !ok {
		return domain.Camp{}, repository.ErrCampNotFound
	}

	return camp, nil
}

func (f *fakeCampRepo) FindBySlug(_ context.Context, slug string, _ time.Time) (domain.Camp, error) {
	camp, ok := f.bySlug[slug]
	if !ok {
		return domain.Camp{}, repository.ErrCampNotFound
	}

	return camp, nil
}

func (f *fakeCampRepo) FindPage(_ context.Context, filter domain.CampFilter, _ time.Time) ([]domain.Camp, int64, error) {
	f.lastFilter = filter

	return f.pageCamps, f.pageTotal, nil
}

func (f *fakeCampRepo) FindFeatured(_ context.Context, _ time.Time, limit int) ([]domain.Camp, error) {
	if len(f.pageCamps) > limit {
		return f.pageCamps[:limit], nil
	}

	return f.pageCamps, nil
}

func (f *fakeCampRepo) FindRelated(_ context.Context, campID, regionID, campTypeID uint, _ time.Time, _ int) ([]domain.Camp, error) {
	f.relatedArgs = []uint{campID, regionID, campTypeID}

	return f.pageCamps, nil
}

func (f *fakeCampRepo) ReplaceSessions(_ context.Context, _ uint, sessions []domain.CampSession) ([]domain.CampSession, error) {
	return sessions, nil
}

func (f *fakeCampRepo) ReplaceGallery(_ context.Context, _ uint, images []domain.GalleryImage) ([]domain.GalleryImage, error) {
	return images, nil
}

func (f *fakeCampRepo) ReplaceActivities(_ context.Context, _ uint, names []string) ([]domain.Activity, error) {
	result := make([]domain.Activity, len(names))
	for i, name := range names {
		result[i] = domain.Activity{Name: name, SortOrder: i}
	}

	return result, nil
}

func (f *fakeCampRepo) ReplaceFacilities(_ context.Context, _ uint, names []string) ([]domain.Facility, error) {
	result := make([]domain.Facility, len(names))
	for i, name := range names {
		result[i] = domain.Facility{Name: name, SortOrder: i}
	}

	return result, nil
}

func (f *fakeCampRepo) ReplaceHighlights(_ context.Context, _ uint, texts []string) ([]domain.Highlight, error) {
	result := make([]domain.Highlight, len(texts))
	for i, text := range texts {
		result[i] = domain.Highlight{Text: text, SortOrder: i}
	}

	return result, nil
}

func (f *fakeCampRepo) ReplaceFAQs(_ context.Context, _ uint, faqs []domain.FAQ) ([]domain.FAQ, error) {
	return faqs, nil
}

func (f *fakeCampRepo) ReplaceSchedule(_ context.Context, _ uint, entries []domain.ScheduleEntry) ([]domain.ScheduleEntry, error) {
	return entries, nil
}

type fakeRegionReader struct {
	regions map[uint]domain.Region
}

func (f *fakeRegionReader) FindByID(_ context.Context, id uint) (domain.Region, error) {
	region, ok := f.regions[id]
	if !ok {
		return domain.Region{}, repository.ErrRegionNotFound
	}

	return region, nil
}

type fakeLookupReader struct {
	types      map[uint]domain.CampType
	categories map[uint]domain.CampCategory
}

func (f *fakeLookupReader) FindTypeByID(_ context.Context, id uint) (domain.CampType, error) {
	ct, ok := f.types[id]
	if !ok {
		return domain.CampType{}, repository.ErrCampTypeNotFound
	}

	return ct, nil
}

func (f *fakeLookupReader) FindCategoryByID(_ context.Context, id uint) (domain.CampCategory, error) {
	cat, ok := f.categories[id]
	if !ok {
		return domain.CampCategory{}, repository.ErrCategoryNotFound
	}

	return cat, nil
}

func newCampServiceForTest(repo *fakeCampRepo) *CampService {
	regions := &fakeRegionReader{regions: map[uint]domain.Region{
		1: {ID: 1, Name: "Alps", Slug: "alps"},
	}}
	lookups := &fakeLookupReader{
		types: map[uint]domain.CampType{
			1: {ID: 1, Name: "Summer Camp", Slug: "summer-camp"},
		},
		categories: map[uint]domain.CampCategory{
			1: {ID: 1, Name: "Sports", Slug: "sports"},
		},
	}

	svc := NewCampService(repo, regions, lookups)
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	return svc
}

func TestCampService_ListPublishedCamps(t *testing.T) {
	t.Run("forces the published filter and defaults paging", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		_, err := svc.ListPublishedCamps(context.Background(), domain.CampFilter{})

		require.NoError(t, err)
		assert.True(t, repo.lastFilter.PublishedOnly)
		assert.Equal(t, 1, repo.lastFilter.Page)
		assert.Equal(t, 12, repo.lastFilter.Limit)
	})

	t.Run("caps the page size", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		_, err := svc.ListPublishedCamps(context.Background(), domain.CampFilter{Limit: 500})

		require.NoError(t, err)
		assert.Equal(t, 50, repo.lastFilter.Limit)
	})

	t.Run("truncates sessions on listing cards", func(t *testing.T) {
		repo := newFakeCampRepo()
		repo.pageCamps = []domain.Camp{
			{
				ID: 1,
				Sessions: []domain.CampSession{
					{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
				},
			},
		}
		repo.pageTotal = 1
		svc := newCampServiceForTest(repo)

		page, err := svc.ListPublishedCamps(context.Background(), domain.CampFilter{})

		require.NoError(t, err)
		require.Len(t, page.Camps, 1)
		assert.Len(t, page.Camps[0].Sessions, 3)
	})

	t.Run("computes total pages with a partial last page", func(t *testing.T) {
		repo := newFakeCampRepo()
		repo.pageTotal = 25
		svc := newCampServiceForTest(repo)

		page, err := svc.ListPublishedCamps(context.Background(), domain.CampFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 3, page.TotalPages)
	})
}

func TestCampService_ListCamps(t *testing.T) {
	repo := newFakeCampRepo()
	svc := newCampServiceForTest(repo)

	_, err := svc.ListCamps(context.Background(), domain.CampFilter{PublishedOnly: true})

	require.NoError(t, err)
	assert.False(t, repo.lastFilter.PublishedOnly, "back office listing must include unpublished camps")
	assert.Equal(t, 20, repo.lastFilter.Limit)
}

func TestCampService_GetPublishedCamp(t *testing.T) {
	repo := newFakeCampRepo()
	repo.add(domain.Camp{ID: 1, Slug: "lakeside", Published: true})
	repo.add(domain.Camp{ID: 2, Slug: "hidden", Published: false})
	svc := newCampServiceForTest(repo)

	t.Run("returns a published camp", func(t *testing.T) {
		camp, err := svc.GetPublishedCamp(context.Background(), "lakeside")

		require.NoError(t, err)
		assert.Equal(t, uint(1), camp.ID)
	})

	t.Run("hides unpublished camps", func(t *testing.T) {
		_, err := svc.GetPublishedCamp(context.Background(), "hidden")

		assert.ErrorIs(t, err, ErrCampNotFound)
	})

	t.Run("missing slug", func(t *testing.T) {
		_, err := svc.GetPublishedCamp(context.Background(), "nope")

		assert.ErrorIs(t, err, ErrCampNotFound)
	})
}

func TestCampService_RelatedCamps(t *testing.T) {
	repo := newFakeCampRepo()
	repo.add(domain.Camp{ID: 7, Slug: "lakeside", Published: true, RegionID: 3, CampTypeID: 4})
	svc := newCampServiceForTest(repo)

	_, err := svc.RelatedCamps(context.Background(), "lakeside")

	require.NoError(t, err)
	assert.Equal(t, []uint{7, 3, 4}, repo.relatedArgs)
}

func TestCampService_CreateCamp(t *testing.T) {
	t.Run("rejects an unknown region", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		_, err := svc.CreateCamp(context.Background(), domain.Camp{RegionID: 99, CampTypeID: 1}, nil)

		assert.ErrorIs(t, err, ErrCampRegionNotFound)
	})

	t.Run("rejects an unknown camp type", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		_, err := svc.CreateCamp(context.Background(), domain.Camp{RegionID: 1, CampTypeID: 99}, nil)

		assert.ErrorIs(t, err, ErrCampTypeInvalid)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		_, err := svc.CreateCamp(context.Background(), domain.Camp{RegionID: 1, CampTypeID: 1}, []uint{42})

		assert.ErrorIs(t, err, ErrCampCategoryInvalid)
	})

	t.Run("creates with valid references", func(t *testing.T) {
		repo := newFakeCampRepo()
		svc := newCampServiceForTest(repo)

		camp, err := svc.CreateCamp(context.Background(), domain.Camp{
			Name:       "Lakeside",
			Slug:       "lakeside",
			RegionID:   1,
			CampTypeID: 1,
		}, []uint{1})

		require.NoError(t, err)
		assert.NotZero(t, camp.ID)
	})
}

func TestCampService_ReplaceSessions(t *testing.T) {
	repo := newFakeCampRepo()
	repo.add(domain.Camp{ID: 1, Slug: "lakeside"})
	svc := newCampServiceForTest(repo)

	t.Run("unknown camp", func(t *testing.T) {
		_, err := svc.ReplaceSessions(context.Background(), 99, nil)

		assert.ErrorIs(t, err, ErrCampNotFound)
	})

	t.Run("replaces for an existing camp", func(t *testing.T) {
		sessions, err := svc.ReplaceSessions(context.Background(), 1, []domain.CampSession{
			{Name: "July", Currency: "EUR"},
		})

		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})
}
