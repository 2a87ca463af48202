package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

var (
	ErrRegionNotFound       = repository.ErrRegionNotFound
	ErrRegionSlugExists     = repository.ErrRegionSlugExists
	ErrRegionHasChildren    = repository.ErrRegionHasChildren
	ErrRegionHasCamps       = repository.ErrRegionHasCamps
	ErrRegionOwnParent      = errors.New("a region cannot be its own parent")
	ErrRegionParentNotFound = errors.New("parent region not found")
)

// Children are eagerly nested this many levels below the roots when the
// tree is listed.
const regionTreeDepth = 3

type RegionRepository interface {
	Create(ctx context.Context, region domain.Region) (domain.Region, error)
	Update(ctx context.Context, region domain.Region) (domain.Region, error)
	FindByID(ctx context.Context, id uint) (domain.Region, error)
	FindBySlug(ctx context.Context, slug string) (domain.Region, error)
	FindAllWithCampCounts(ctx context.Context) ([]domain.Region, error)
	Delete(ctx context.Context, id uint) error
}

type RegionService struct {
	repo RegionRepository
}

func NewRegionService(repo RegionRepository) *RegionService {
	return &RegionService{
		repo: repo,
	}
}

func (s *RegionService) CreateRegion(ctx context.Context, region domain.Region) (domain.Region, error) {
	if err := s.checkParent(ctx, region.ParentID, 0); err != nil {
		return domain.Region{}, err
	}

	created, err := s.repo.Create(ctx, region)
	if err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *RegionService) UpdateRegion(ctx context.Context, region domain.Region) (domain.Region, error) {
	if _, err := s.repo.FindByID(ctx, region.ID); err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.checkParent(ctx, region.ParentID, region.ID); err != nil {
		return domain.Region{}, err
	}

	updated, err := s.repo.Update(ctx, region)
	if err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// checkParent rejects direct self-parenting and dangling parent ids.
// Re-parenting under a deeper descendant is not detected; untangling
// such a cycle is left to the operator.
func (s *RegionService) checkParent(ctx context.Context, parentID *uint, selfID uint) error {
	if parentID == nil {
		return nil
	}

	if selfID != 0 && *parentID == selfID {
		return ErrRegionOwnParent
	}

	if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return ErrRegionParentNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return nil
}

func (s *RegionService) GetRegion(ctx context.Context, id uint) (domain.Region, error) {
	region, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return region, nil
}

// GetRegionBySlug returns the node with its parent, its direct children
// and the published camp counts.
func (s *RegionService) GetRegionBySlug(ctx context.Context, slug string) (domain.Region, error) {
	region, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.FindBySlug -> %w", err)
	}

	all, err := s.repo.FindAllWithCampCounts(ctx)
	if err != nil {
		return domain.Region{}, fmt.Errorf("s.repo.FindAllWithCampCounts -> %w", err)
	}

	for _, node := range all {
		if node.ID == region.ID {
			region.CampCount = node.CampCount
		}
		if node.ParentID != nil && *node.ParentID == region.ID {
			region.Children = append(region.Children, node)
		}
	}

	return region, nil
}

// GetTree returns the root regions with children eagerly nested up to a
// fixed depth. Every node carries the count of published camps attached
// to that node only; counts are not summed from descendants.
func (s *RegionService) GetTree(ctx context.Context) ([]domain.Region, error) {
	all, err := s.repo.FindAllWithCampCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllWithCampCounts -> %w", err)
	}

	return buildRegionTree(all, regionTreeDepth), nil
}

// buildRegionTree groups the flat region list by parent and walks down
// from the roots. Input order is preserved within each sibling group.
func buildRegionTree(all []domain.Region, depth int) []domain.Region {
	byParent := make(map[uint][]domain.Region)
	var roots []domain.Region

	for _, region := range all {
		if region.ParentID == nil {
			roots = append(roots, region)
			continue
		}
		byParent[*region.ParentID] = append(byParent[*region.ParentID], region)
	}

	for i := range roots {
		attachChildren(&roots[i], byParent, depth)
	}

	return roots
}

func attachChildren(node *domain.Region, byParent map[uint][]domain.Region, depth int) {
	if depth == 0 {
		return
	}

	children := byParent[node.ID]
	if len(children) == 0 {
		return
	}

	node.Children = make([]domain.Region, len(children))
	copy(node.Children, children)

	for i := range node.Children {
		attachChildren(&node.Children[i], byParent, depth-1)
	}
}

func (s *RegionService) DeleteRegion(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
