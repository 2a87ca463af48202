package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type Inquiry struct {
	ID uint `gorm:"primaryKey"`

	Reference string `gorm:"unique;not null"`
	CampID    uint   `gorm:"not null;index"`
	UserID    *uint  `gorm:"index"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"not null"`
	Status    string `gorm:"not null;default:NEW"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type InquiryDAO struct {
	db *gorm.DB
}

func NewInquiryDAO(db *gorm.DB) *InquiryDAO {
	return &InquiryDAO{
		db: db,
	}
}

func (d *InquiryDAO) Insert(ctx context.Context, inquiry Inquiry) (Inquiry, error) {
	result := d.db.WithContext(ctx).Create(&inquiry)
	if result.Error != nil {
		return Inquiry{}, result.Error
	}

	return inquiry, nil
}

func (d *InquiryDAO) FindByID(ctx context.Context, id uint) (Inquiry, error) {
	var inquiry Inquiry

	result := d.db.WithContext(ctx).First(&inquiry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inquiry{}, ErrInquiryNotFound
		}

		return Inquiry{}, result.Error
	}

	return inquiry, nil
}

func (d *InquiryDAO) FindAll(ctx context.Context, status string, offset, limit int) ([]Inquiry, int64, error) {
	var (
		inquiries []Inquiry
		total     int64
	)

	query := d.db.WithContext(ctx).Model(&Inquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&inquiries)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return inquiries, total, nil
}

func (d *InquiryDAO) UpdateStatus(ctx context.Context, id uint, status string) (Inquiry, error) {
	result := d.db.WithContext(ctx).Model(&Inquiry{ID: id}).Update("status", status)
	if result.Error != nil {
		return Inquiry{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Inquiry{}, ErrInquiryNotFound
	}

	return d.FindByID(ctx, id)
}
