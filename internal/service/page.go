package service

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var (
	ErrPageNotFound   = repository.ErrPageNotFound
	ErrPageSlugExists = repository.ErrPageSlugExists
)

type PageRepository interface {
	Create(ctx context.Context, page domain.Page) (domain.Page, error)
	Update(ctx context.Context, page domain.Page) (domain.Page, error)
	FindByID(ctx context.Context, id uint) (domain.Page, error)
	FindBySlug(ctx context.Context, slug string) (domain.Page, error)
	FindAll(ctx context.Context) ([]domain.Page, error)
	Delete(ctx context.Context, id uint) error
}

type PageService struct {
	repo PageRepository
}

func NewPageService(repo PageRepository) *PageService {
	return &PageService{
		repo: repo,
	}
}

func (s *PageService) CreatePage(ctx context.Context, page domain.Page) (domain.Page, error) {
	created, err := s.repo.Create(ctx, page)
	if err != nil {
		return domain.Page{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PageService) UpdatePage(ctx context.Context, page domain.Page) (domain.Page, error) {
	if _, err := s.repo.FindByID(ctx, page.ID); err != nil {
		return domain.Page{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return domain.Page{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PageService) GetPage(ctx context.Context, id uint) (domain.Page, error) {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Page{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return page, nil
}

// GetPublishedPage serves the public page view. Unpublished pages read
// as missing.
func (s *PageService) GetPublishedPage(ctx context.Context, slug string) (domain.Page, error) {
	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Page{}, fmt.Errorf("s.repo.FindBySlug -> %w", err)
	}

	if !page.Published {
		return domain.Page{}, ErrPageNotFound
	}

	return page, nil
}

func (s *PageService) ListPages(ctx context.Context) ([]domain.Page, error) {
	pages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return pages, nil
}

func (s *PageService) DeletePage(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
