package repository

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var (
	ErrPageNotFound   = dao.ErrPageNotFound
	ErrPageSlugExists = dao.ErrPageSlugExists
)

type PageDAO interface {
	Insert(ctx context.Context, page dao.Page) (dao.Page, error)
	Update(ctx context.Context, page dao.Page) (dao.Page, error)
	FindByID(ctx context.Context, id uint) (dao.Page, error)
	FindBySlug(ctx context.Context, slug string) (dao.Page, error)
	FindAll(ctx context.Context) ([]dao.Page, error)
	Delete(ctx context.Context, id uint) error
}

type PageRepository struct {
	dao PageDAO
}

func NewPageRepository(dao PageDAO) *PageRepository {
	return &PageRepository{
		dao: dao,
	}
}

func (r *PageRepository) Create(ctx context.Context, page domain.Page) (domain.Page, error) {
	created, err := r.dao.Insert(ctx, pageDomainToDao(page))
	if err != nil {
		return domain.Page{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return pageDaoToDomain(created), nil
}

func (r *PageRepository) Update(ctx context.Context, page domain.Page) (domain.Page, error) {
	updated, err := r.dao.Update(ctx, pageDomainToDao(page))
	if err != nil {
		return domain.Page{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return pageDaoToDomain(updated), nil
}

func (r *PageRepository) FindByID(ctx context.Context, id uint) (domain.Page, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Page{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return pageDaoToDomain(found), nil
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (domain.Page, error) {
	found, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Page{}, fmt.Errorf("r.dao.FindBySlug -> %w", err)
	}

	return pageDaoToDomain(found), nil
}

func (r *PageRepository) FindAll(ctx context.Context) ([]domain.Page, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	pages := make([]domain.Page, len(found))
	for i, page := range found {
		pages[i] = pageDaoToDomain(page)
	}

	return pages, nil
}

func (r *PageRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func pageDomainToDao(page domain.Page) dao.Page {
	return dao.Page{
		ID:        page.ID,
		Title:     page.Title,
		Slug:      page.Slug,
		Content:   page.Content,
		Published: page.Published,
	}
}

func pageDaoToDomain(page dao.Page) domain.Page {
	return domain.Page{
		ID:        page.ID,
		Title:     page.Title,
		Slug:      page.Slug,
		Content:   page.Content,
		Published: page.Published,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
}
