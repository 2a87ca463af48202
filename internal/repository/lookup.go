package repository

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var (
	ErrCampTypeNotFound   = dao.ErrCampTypeNotFound
	ErrCampTypeSlugExists = dao.ErrCampTypeSlugExists
	ErrCampTypeInUse      = dao.ErrCampTypeInUse
	ErrCategoryNotFound   = dao.ErrCategoryNotFound
	ErrCategorySlugExists = dao.ErrCategorySlugExists
	ErrCategoryInUse      = dao.ErrCategoryInUse
)

type LookupDAO interface {
	InsertType(ctx context.Context, ct dao.CampType) (dao.CampType, error)
	UpdateType(ctx context.Context, ct dao.CampType) (dao.CampType, error)
	FindTypeByID(ctx context.Context, id uint) (dao.CampType, error)
	FindTypeBySlug(ctx context.Context, slug string) (dao.CampType, error)
	FindAllTypes(ctx context.Context) ([]dao.CampType, error)
	CountPublishedCampsByType(ctx context.Context) ([]dao.TypeCampCount, error)
	DeleteType(ctx context.Context, id uint) error

	InsertCategory(ctx context.Context, cat dao.CampCategory) (dao.CampCategory, error)
	UpdateCategory(ctx context.Context, cat dao.CampCategory) (dao.CampCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (dao.CampCategory, error)
	FindAllCategories(ctx context.Context) ([]dao.CampCategory, error)
	CountPublishedCampsByCategory(ctx context.Context) ([]dao.CategoryCampCount, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type LookupRepository struct {
	dao LookupDAO
}

func NewLookupRepository(dao LookupDAO) *LookupRepository {
	return &LookupRepository{
		dao: dao,
	}
}

func (r *LookupRepository) CreateType(ctx context.Context, ct domain.CampType) (domain.CampType, error) {
	created, err := r.dao.InsertType(ctx, typeDomainToDao(ct))
	if err != nil {
		return domain.CampType{}, fmt.Errorf("r.dao.InsertType -> %w", err)
	}

	return typeDaoToDomain(created), nil
}

func (r *LookupRepository) UpdateType(ctx context.Context, ct domain.CampType) (domain.CampType, error) {
	updated, err := r.dao.UpdateType(ctx, typeDomainToDao(ct))
	if err != nil {
		return domain.CampType{}, fmt.Errorf("r.dao.UpdateType -> %w", err)
	}

	return typeDaoToDomain(updated), nil
}

func (r *LookupRepository) FindTypeByID(ctx context.Context, id uint) (domain.CampType, error) {
	found, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}

	return typeDaoToDomain(found), nil
}

func (r *LookupRepository) FindTypeBySlug(ctx context.Context, slug string) (domain.CampType, error) {
	found, err := r.dao.FindTypeBySlug(ctx, slug)
	if err != nil {
		return domain.CampType{}, fmt.Errorf("r.dao.FindTypeBySlug -> %w", err)
	}

	return typeDaoToDomain(found), nil
}

// FindAllTypes returns camp types name-ordered, each annotated with its
// published camp count.
func (r *LookupRepository) FindAllTypes(ctx context.Context) ([]domain.CampType, error) {
	found, err := r.dao.FindAllTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllTypes -> %w", err)
	}

	counts, err := r.dao.CountPublishedCampsByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountPublishedCampsByType -> %w", err)
	}

	countByType := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByType[c.CampTypeID] = c.Count
	}

	types := make([]domain.CampType, len(found))
	for i, ct := range found {
		types[i] = typeDaoToDomain(ct)
		types[i].CampCount = countByType[ct.ID]
	}

	return types, nil
}

func (r *LookupRepository) DeleteType(ctx context.Context, id uint) error {
	if err := r.dao.DeleteType(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteType -> %w", err)
	}

	return nil
}

func (r *LookupRepository) CreateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error) {
	created, err := r.dao.InsertCategory(ctx, categoryDomainToDao(cat))
	if err != nil {
		return domain.CampCategory{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return categoryDaoToDomain(created), nil
}

func (r *LookupRepository) UpdateCategory(ctx context.Context, cat domain.CampCategory) (domain.CampCategory, error) {
	updated, err := r.dao.UpdateCategory(ctx, categoryDomainToDao(cat))
	if err != nil {
		return domain.CampCategory{}, fmt.Errorf("r.dao.UpdateCategory -> %w", err)
	}

	return categoryDaoToDomain(updated), nil
}

func (r *LookupRepository) FindCategoryByID(ctx context.Context, id uint) (domain.CampCategory, error) {
	found, err := r.dao.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.CampCategory{}, fmt.Errorf("r.dao.FindCategoryByID -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

// FindAllCategories returns categories name-ordered, each annotated with
// its published camp count.
func (r *LookupRepository) FindAllCategories(ctx context.Context) ([]domain.CampCategory, error) {
	found, err := r.dao.FindAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllCategories -> %w", err)
	}

	counts, err := r.dao.CountPublishedCampsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountPublishedCampsByCategory -> %w", err)
	}

	countByCategory := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByCategory[c.CampCategoryID] = c.Count
	}

	categories := make([]domain.CampCategory, len(found))
	for i, cat := range found {
		categories[i] = categoryDaoToDomain(cat)
		categories[i].CampCount = countByCategory[cat.ID]
	}

	return categories, nil
}

func (r *LookupRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.dao.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCategory -> %w", err)
	}

	return nil
}

func typeDomainToDao(ct domain.CampType) dao.CampType {
	return dao.CampType{
		ID:        ct.ID,
		Name:      ct.Name,
		Slug:      ct.Slug,
		Icon:      ct.Icon,
		SortOrder: ct.SortOrder,
	}
}

func typeDaoToDomain(ct dao.CampType) domain.CampType {
	return domain.CampType{
		ID:        ct.ID,
		Name:      ct.Name,
		Slug:      ct.Slug,
		Icon:      ct.Icon,
		SortOrder: ct.SortOrder,
		CreatedAt: ct.CreatedAt,
		UpdatedAt: ct.UpdatedAt,
	}
}

func categoryDomainToDao(cat domain.CampCategory) dao.CampCategory {
	return dao.CampCategory{
		ID:        cat.ID,
		Name:      cat.Name,
		Slug:      cat.Slug,
		SortOrder: cat.SortOrder,
	}
}

func categoryDaoToDomain(cat dao.CampCategory) domain.CampCategory {
	return domain.CampCategory{
		ID:        cat.ID,
		Name:      cat.Name,
		Slug:      cat.Slug,
		SortOrder: cat.SortOrder,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}
