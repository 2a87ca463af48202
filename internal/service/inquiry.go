package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var (
	ErrInquiryNotFound      = repository.ErrInquiryNotFound
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error)
	FindAll(ctx context.Context, status string, offset, limit int) ([]domain.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (domain.Inquiry, error)
}

// InquiryCampReader resolves the target camp without loading its child
// collections.
type InquiryCampReader interface {
	FindSummaryBySlug(ctx context.Context, slug string) (domain.Camp, error)
}

type InquiryService struct {
	repo  InquiryRepository
	camps InquiryCampReader
}

func NewInquiryService(repo InquiryRepository, camps InquiryCampReader) *InquiryService {
	return &InquiryService{
		repo:  repo,
		camps: camps,
	}
}

// SubmitInquiry records a visitor inquiry against a published camp and
// hands back a reference the visitor can quote in follow-ups.
func (s *InquiryService) SubmitInquiry(ctx context.Context, campSlug string, inquiry domain.Inquiry) (domain.Inquiry, error) {
	camp, err := s.camps.FindSummaryBySlug(ctx, campSlug)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("s.camps.FindSummaryBySlug -> %w", err)
	}

	if !camp.Published {
		return domain.Inquiry{}, ErrCampNotFound
	}

	inquiry.CampID = camp.ID
	inquiry.Reference = uuid.NewString()
	inquiry.Status = domain.InquiryStatusNew

	created, err := s.repo.Create(ctx, inquiry)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context, status string, page, limit int) (domain.InquiryPage, error) {
	if status != "" && !validInquiryStatus(status) {
		return domain.InquiryPage{}, ErrInvalidInquiryStatus
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAdminPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	inquiries, total, err := s.repo.FindAll(ctx, status, (page-1)*limit, limit)
	if err != nil {
		return domain.InquiryPage{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.InquiryPage{
		Inquiries:  inquiries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *InquiryService) UpdateInquiryStatus(ctx context.Context, id uint, status string) (domain.Inquiry, error) {
	if !validInquiryStatus(status) {
		return domain.Inquiry{}, ErrInvalidInquiryStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return updated, nil
}

func validInquiryStatus(status string) bool {
	switch status {
	case domain.InquiryStatusNew, domain.InquiryStatusAnswered, domain.InquiryStatusArchived:
		return true
	}

	return false
}
