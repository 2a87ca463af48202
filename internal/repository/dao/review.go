package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

func (d *ReviewDAO) Insert(ctx context.Context, review Review) (Review, error) {
	result := d.db.WithContext(ctx).Create(&review)
	if result.Error != nil {
		return Review{}, result.Error
	}

	return review, nil
}

func (d *ReviewDAO) FindByID(ctx context.Context, id uint) (Review, error) {
	var review Review

	result := d.db.WithContext(ctx).Preload("Author").First(&review, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Review{}, ErrReviewNotFound
		}

		return Review{}, result.Error
	}

	return review, nil
}

func (d *ReviewDAO) FindAll(ctx context.Context, campID uint) ([]Review, error) {
	var reviews []Review

	query := d.db.WithContext(ctx).Preload("Author").Order("created_at DESC")
	if campID != 0 {
		query = query.Where("camp_id = ?", campID)
	}

	result := query.Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

func (d *ReviewDAO) SetApproved(ctx context.Context, id uint, approved bool) (Review, error) {
	result := d.db.WithContext(ctx).Model(&Review{ID: id}).Update("approved", approved)
	if result.Error != nil {
		return Review{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Review{}, ErrReviewNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *ReviewDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
