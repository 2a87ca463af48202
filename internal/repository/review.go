package repository

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var ErrReviewNotFound = dao.ErrReviewNotFound

type ReviewDAO interface {
	Insert(ctx context.Context, review dao.Review) (dao.Review, error)
	FindByID(ctx context.Context, id uint) (dao.Review, error)
	FindAll(ctx context.Context, campID uint) ([]dao.Review, error)
	SetApproved(ctx context.Context, id uint, approved bool) (dao.Review, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewRepository struct {
	dao ReviewDAO
}

func NewReviewRepository(dao ReviewDAO) *ReviewRepository {
	return &ReviewRepository{
		dao: dao,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	created, err := r.dao.Insert(ctx, dao.Review{
		CampID:   review.CampID,
		UserID:   review.UserID,
		Rating:   review.Rating,
		Title:    review.Title,
		Comment:  review.Comment,
		Approved: review.Approved,
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return reviewDaoToDomain(created), nil
}

func (r *ReviewRepository) FindAll(ctx context.Context, campID uint) ([]domain.Review, error) {
	found, err := r.dao.FindAll(ctx, campID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return reviewsDaoToDomain(found), nil
}

func (r *ReviewRepository) SetApproved(ctx context.Context, id uint, approved bool) (domain.Review, error) {
	updated, err := r.dao.SetApproved(ctx, id, approved)
	if err != nil {
		return domain.Review{}, fmt.Errorf("r.dao.SetApproved -> %w", err)
	}

	return reviewDaoToDomain(updated), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
