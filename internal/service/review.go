package service

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var ErrReviewNotFound = repository.ErrReviewNotFound

type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	FindAll(ctx context.Context, campID uint) ([]domain.Review, error)
	SetApproved(ctx context.Context, id uint, approved bool) (domain.Review, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewService struct {
	repo  ReviewRepository
	camps InquiryCampReader
}

func NewReviewService(repo ReviewRepository, camps InquiryCampReader) *ReviewService {
	return &ReviewService{
		repo:  repo,
		camps: camps,
	}
}

// SubmitReview stores a visitor review against a published camp. New
// reviews stay hidden until a moderator approves them.
func (s *ReviewService) SubmitReview(ctx context.Context, campSlug string, review domain.Review) (domain.Review, error) {
	camp, err := s.camps.FindSummaryBySlug(ctx, campSlug)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.camps.FindSummaryBySlug -> %w", err)
	}

	if !camp.Published {
		return domain.Review{}, ErrCampNotFound
	}

	review.CampID = camp.ID
	review.Approved = false

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListReviews returns reviews for moderation, all camps when campID is
// zero.
func (s *ReviewService) ListReviews(ctx context.Context, campID uint) ([]domain.Review, error) {
	reviews, err := s.repo.FindAll(ctx, campID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return reviews, nil
}

func (s *ReviewService) SetReviewApproved(ctx context.Context, id uint, approved bool) (domain.Review, error) {
	updated, err := s.repo.SetApproved(ctx, id, approved)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.SetApproved -> %w", err)
	}

	return updated, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
