package repository

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var ErrInquiryNotFound = dao.ErrInquiryNotFound

type InquiryDAO interface {
	Insert(ctx context.Context, inquiry dao.Inquiry) (dao.Inquiry, error)
	FindByID(ctx context.Context, id uint) (dao.Inquiry, error)
	FindAll(ctx context.Context, status string, offset, limit int) ([]dao.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Inquiry, error)
}

type InquiryRepository struct {
	dao InquiryDAO
}

func NewInquiryRepository(dao InquiryDAO) *InquiryRepository {
	return &InquiryRepository{
		dao: dao,
	}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry domain.Inquiry) (domain.Inquiry, error) {
	created, err := r.dao.Insert(ctx, dao.Inquiry{
		Reference: inquiry.Reference,
		CampID:    inquiry.CampID,
		UserID:    inquiry.UserID,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Message:   inquiry.Message,
		Status:    inquiry.Status,
	})
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return inquiryDaoToDomain(created), nil
}

func (r *InquiryRepository) FindAll(ctx context.Context, status string, offset, limit int) ([]domain.Inquiry, int64, error) {
	found, total, err := r.dao.FindAll(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	inquiries := make([]domain.Inquiry, len(found))
	for i, inq := range found {
		inquiries[i] = inquiryDaoToDomain(inq)
	}

	return inquiries, total, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id uint, status string) (domain.Inquiry, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return inquiryDaoToDomain(updated), nil
}

func inquiryDaoToDomain(inq dao.Inquiry) domain.Inquiry {
	return domain.Inquiry{
		ID:        inq.ID,
		Reference: inq.Reference,
		CampID:    inq.CampID,
		UserID:    inq.UserID,
		Name:      inq.Name,
		Email:     inq.Email,
		Message:   inq.Message,
		Status:    inq.Status,
		CreatedAt: inq.CreatedAt,
		UpdatedAt: inq.UpdatedAt,
	}
}
