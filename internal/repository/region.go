package repository

import (
	"context"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository/dao"
)

var (
	ErrRegionNotFound    = dao.ErrRegionNotFound
	ErrRegionSlugExists  = dao.ErrRegionSlugExists
	ErrRegionHasChildren = dao.ErrRegionHasChildren
	ErrRegionHasCamps    = dao.ErrRegionHasCamps
)

type RegionDAO interface {
	Insert(ctx context.Context, region dao.Region) (dao.Region, error)
	Update(ctx context.Context, region dao.Region) (dao.Region, error)
	FindByID(ctx context.Context, id uint) (dao.Region, error)
	FindBySlug(ctx context.Context, slug string) (dao.Region, error)
	FindAll(ctx context.Context) ([]dao.Region, error)
	CountPublishedCamps(ctx context.Context) ([]dao.RegionCampCount, error)
	Delete(ctx context.Context, id uint) error
}

type RegionRepository struct {
	dao RegionDAO
}

func NewRegionRepository(dao RegionDAO) *RegionRepository {
	return &RegionRepository{
		dao: dao,
	}
}

func (r *RegionRepository) Create(ctx context.Context, region domain.Region) (domain.Region, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(region))
	if err != nil {
		return domain.Region{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegionRepository) Update(ctx context.Context, region domain.Region) (domain.Region, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(region))
	if err != nil {
		return domain.Region{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RegionRepository) FindByID(ctx context.Context, id uint) (domain.Region, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Region{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RegionRepository) FindBySlug(ctx context.Context, slug string) (domain.Region, error) {
	found, err := r.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Region{}, fmt.Errorf("r.dao.FindBySlug -> %w", err)
	}

	region := r.daoToDomain(found)
	if found.Parent != nil {
		parent := r.daoToDomain(*found.Parent)
		region.Parent = &parent
	}

	return region, nil
}

// FindAllWithCampCounts loads every region flat, each annotated with its
// own published camp count. Tree assembly happens in the service.
func (r *RegionRepository) FindAllWithCampCounts(ctx context.Context) ([]domain.Region, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	counts, err := r.dao.CountPublishedCamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountPublishedCamps -> %w", err)
	}

	countByRegion := make(map[uint]int64, len(counts))
	for _, c := range counts {
		countByRegion[c.RegionID] = c.Count
	}

	regions := make([]domain.Region, len(found))
	for i, reg := range found {
		regions[i] = r.daoToDomain(reg)
		regions[i].CampCount = countByRegion[reg.ID]
	}

	return regions, nil
}

func (r *RegionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *RegionRepository) domainToDao(region domain.Region) dao.Region {
	return dao.Region{
		ID:          region.ID,
		Name:        region.Name,
		Slug:        region.Slug,
		Description: region.Description,
		Image:       region.Image,
		ParentID:    region.ParentID,
		SortOrder:   region.SortOrder,
	}
}

func (r *RegionRepository) daoToDomain(region dao.Region) domain.Region {
	return domain.Region{
		ID:          region.ID,
		Name:        region.Name,
		Slug:        region.Slug,
		Description: region.Description,
		Image:       region.Image,
		ParentID:    region.ParentID,
		SortOrder:   region.SortOrder,
		CreatedAt:   region.CreatedAt,
		UpdatedAt:   region.UpdatedAt,
	}
}
