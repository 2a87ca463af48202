package service

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var (
	ErrCampTypeNotFound   = repository.ErrCampTypeNotFound
	ErrCampTypeSlugExists = repository.ErrCampTypeSlugExists
	ErrCampTypeInUse      = repository.ErrCampTypeInUse
	ErrCategoryNotFound   = repository.ErrCategoryNotFound
	ErrCategorySlugExists = repository.ErrCategorySlugExists
	ErrCategoryInUse      = repository.ErrCategoryInUse
)

type LookupRepository interface {
	CreateType(ctx context.Context, ct domain.CampType) (domain.CampType, error)
	UpdateType(ctx context.Context, ct domain.CampType) (domain.CampType, error)
	FindTypeByID(ctx context.Context, id uint) (domain.CampType, error)
	FindTypeBySlug(ctx context.Context, slug string) (domain.CampType, error)
	FindAllTypes(ctx context.Context) ([]domain.CampType, error)
	DeleteType(ctx context.Context, id uint) error
	CreateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error)
	UpdateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.CampCategory, error)
	FindAllCategories(ctx context.Context) ([]domain.CampCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// LookupService manages the two flat classification tables, camp types
// and camp categories.
type LookupService struct {
	repo LookupRepository
}

func NewLookupService(repo LookupRepository) *LookupService {
	return &LookupService{
		repo: repo,
	}
}

func (s *LookupService) CreateType(ctx context.Context, ct domain.CampType) (domain.CampType, error) {
	created, err := s.repo.CreateType(ctx, ct)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("s.repo.CreateType -> %w", err)
	}

	return created, nil
}

func (s *LookupService) UpdateType(ctx context.Context, ct domain.CampType) (domain.CampType, error) {
	if _, err := s.repo.FindTypeByID(ctx, ct.ID); err != nil {
		return domain.CampType{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	updated, err := s.repo.UpdateType(ctx, ct)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("s.repo.UpdateType -> %w", err)
	}

	return updated, nil
}

func (s *LookupService) GetType(ctx context.Context, id uint) (domain.CampType, error) {
	ct, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("s.repo.FindTypeByID -> %w", err)
	}

	return ct, nil
}

func (s *LookupService) GetTypeBySlug(ctx context.Context, slug string) (domain.CampType, error) {
	ct, err := s.repo.FindTypeBySlug(ctx, slug)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("s.repo.FindTypeBySlug -> %w", err)
	}

	return ct, nil
}

func (s *LookupService) ListTypes(ctx context.Context) ([]domain.CampType, error) {
	types, err := s.repo.FindAllTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllTypes -> %w", err)
	}

	return types, nil
}

func (s *LookupService) DeleteType(ctx context.Context, id uint) error {
	if err := s.repo.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteType -> %w", err)
	}

	return nil
}

func (s *LookupService) CreateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error) {
	created, err := s.repo.CreateCategory(ctx, cat)
	if err != nil {
		return domain.CampCategory{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *LookupService) UpdateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error) {
	if _, err := s.repo.FindCategoryByID(ctx, cat.ID); err != nil {
		return domain.CampCategory{}, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	updated, err := s.repo.UpdateCategory(ctx, cat)
	if err != nil {
		return domain.CampCategory{}, fmt.Errorf("s.repo.UpdateCategory -> %w", err)
	}

	return updated, nil
}

func (s *LookupService) ListCategories(ctx context.Context) ([]domain.CampCategory, error) {
	categories, err := s.repo.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllCategories -> %w", err)
	}

	return categories, nil
}

func (s *LookupService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteCategory -> %w", err)
	}

	return nil
}
