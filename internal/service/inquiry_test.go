package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

type fakeInquiryRepo struct {
	inquiries []domain.Inquiry

	lastStatus string
	lastOffset int
	lastLimit  int
}

func (f *fakeInquiryRepo) Create(_ context.Context, inquiry domain.Inquiry) (domain.Inquiry, error) {
	inquiry.ID = uint(len(f.inquiries) + 1)
	f.inquiries = append(f.inquiries, inquiry)

	return inquiry, nil
}

func (f *fakeInquiryRepo) FindAll(_ context.Context, status string, offset, limit int) ([]domain.Inquiry, int64, error) {
	f.lastStatus = status
	f.lastOffset = offset
	f.lastLimit = limit

	return f.inquiries, int64(len(f.inquiries)), nil
}

func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id uint, status string) (domain.Inquiry, error) {
	for i, inquiry := range f.inquiries {
		if inquiry.ID == id {
			f.inquiries[i].Status = status

			return f.inquiries[i], nil
		}
	}

	return domain.Inquiry{}, repository.ErrInquiryNotFound
}

type fakeCampReader struct {
	camps map[string]domain.Camp
}

func (f *fakeCampReader) FindSummaryBySlug(_ context.Context, slug string) (domain.Camp, error) {
	camp, ok := f.camps[slug]
	if !ok {
		return domain.Camp{}, repository.ErrCampNotFound
	}

	return camp, nil
}

func newInquiryServiceForTest(repo *fakeInquiryRepo) *InquiryService {
	camps := &fakeCampReader{camps: map[string]domain.Camp{
		"lakeside": {ID: 5, Slug: "lakeside", Published: true},
		"hidden":   {ID: 6, Slug: "hidden", Published: false},
	}}

	return NewInquiryService(repo, camps)
}

func TestInquiryService_SubmitInquiry(t *testing.T) {
	t.Run("attaches the camp, a reference and the NEW status", func(t *testing.T) {
		repo := &fakeInquiryRepo{}
		svc := newInquiryServiceForTest(repo)

		created, err := svc.SubmitInquiry(context.Background(), "lakeside", domain.Inquiry{
			Name:    "Jane",
			Email:   "jane@example.com",
			Message: "Is the July session still open?",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(5), created.CampID)
		assert.Equal(t, domain.InquiryStatusNew, created.Status)
		assert.NotEmpty(t, created.Reference)
	})

	t.Run("unpublished camps read as missing", func(t *testing.T) {
		svc := newInquiryServiceForTest(&fakeInquiryRepo{})

		_, err := svc.SubmitInquiry(context.Background(), "hidden", domain.Inquiry{})

		assert.ErrorIs(t, err, ErrCampNotFound)
	})

	t.Run("references are unique per inquiry", func(t *testing.T) {
		repo := &fakeInquiryRepo{}
		svc := newInquiryServiceForTest(repo)

		first, err := svc.SubmitInquiry(context.Background(), "lakeside", domain.Inquiry{Name: "A"})
		require.NoError(t, err)
		second, err := svc.SubmitInquiry(context.Background(), "lakeside", domain.Inquiry{Name: "B"})
		require.NoError(t, err)

		assert.NotEqual(t, first.Reference, second.Reference)
	})
}

func TestInquiryService_ListInquiries(t *testing.T) {
	t.Run("rejects unknown statuses", func(t *testing.T) {
		svc := newInquiryServiceForTest(&fakeInquiryRepo{})

		_, err := svc.ListInquiries(context.Background(), "BOGUS", 1, 20)

		assert.ErrorIs(t, err, ErrInvalidInquiryStatus)
	})

	t.Run("defaults paging and passes the filter through", func(t *testing.T) {
		repo := &fakeInquiryRepo{}
		svc := newInquiryServiceForTest(repo)

		_, err := svc.ListInquiries(context.Background(), domain.InquiryStatusNew, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusNew, repo.lastStatus)
		assert.Equal(t, 0, repo.lastOffset)
		assert.Equal(t, 20, repo.lastLimit)
	})
}

func TestInquiryService_UpdateInquiryStatus(t *testing.T) {
	repo := &fakeInquiryRepo{inquiries: []domain.Inquiry{
		{ID: 1, Status: domain.InquiryStatusNew},
	}}
	svc := newInquiryServiceForTest(repo)

	t.Run("moves through the workflow", func(t *testing.T) {
		updated, err := svc.UpdateInquiryStatus(context.Background(), 1, domain.InquiryStatusAnswered)

		require.NoError(t, err)
		assert.Equal(t, domain.InquiryStatusAnswered, updated.Status)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := svc.UpdateInquiryStatus(context.Background(), 1, "DONE")

		assert.ErrorIs(t, err, ErrInvalidInquiryStatus)
	})

	t.Run("unknown inquiry", func(t *testing.T) {
		_, err := svc.UpdateInquiryStatus(context.Background(), 99, domain.InquiryStatusArchived)

		assert.ErrorIs(t, err, ErrInquiryNotFound)
	})
}
