package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camlisting/camlisting/internal/domain"
	"github.com/camlisting/camlisting/internal/repository"
)

type fakeRegionRepo struct {
	regions map[uint]domain.Region
	nextID  uint
}

func newFakeRegionRepo(regions ...domain.Region) *fakeRegionRepo {
	f := &fakeRegionRepo{regions: make(map[uint]domain.Region)}
	for _, region := range regions {
		f.regions[region.ID] = region
		if region.ID > f.nextID {
			f.nextID = region.ID
		}
	}

	return f
}

func (f *fakeRegionRepo) Create(_ context.Context, region domain.Region) (domain.Region, error) {
	f.nextID++
	region.ID = f.nextID
	f.regions[region.ID] = region

	return region, nil
}

func (f *fakeRegionRepo) Update(_ context.Context, region domain.Region) (domain.Region, error) {
	f.regions[region.ID] = region

	return region, nil
}

func (f *fakeRegionRepo) FindByID(_ context.Context, id uint) (domain.Region, error) {
	region, ok := f.regions[id]
	if !ok {
		return domain.Region{}, repository.ErrRegionNotFound
	}

	return region, nil
}

func (f *fakeRegionRepo) FindBySlug(_ context.Context, slug string) (domain.Region, error) {
	for _, region := range f.regions {
		if region.Slug == slug {
			return region, nil
		}
	}

	return domain.Region{}, repository.ErrRegionNotFound
}

func (f *fakeRegionRepo) FindAllWithCampCounts(_ context.Context) ([]domain.Region, error) {
	result := make([]domain.Region, 0, len(f.regions))
	for id := uint(1); id <= f.nextID; id++ {
		if region, ok := f.regions[id]; ok {
			result = append(result, region)
		}
	}

	return result, nil
}

func (f *fakeRegionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.regions[id]; !ok {
		return repository.ErrRegionNotFound
	}
	delete(f.regions, id)

	return nil
}

func ptr(v uint) *uint {
	return &v
}

func TestRegionService_GetTree(t *testing.T) {
	repo := newFakeRegionRepo(
		domain.Region{ID: 1, Name: "Europe", Slug: "europe", CampCount: 2},
		domain.Region{ID: 2, Name: "France", Slug: "france", ParentID: ptr(1), CampCount: 5},
		domain.Region{ID: 3, Name: "Provence", Slug: "provence", ParentID: ptr(2)},
		domain.Region{ID: 4, Name: "Aix", Slug: "aix", ParentID: ptr(3), CampCount: 1},
		domain.Region{ID: 5, Name: "Asia", Slug: "asia"},
	)
	svc := NewRegionService(repo)

	tree, err := svc.GetTree(context.Background())

	require.NoError(t, err)
	require.Len(t, tree, 2)

	europe := tree[0]
	assert.Equal(t, "Europe", europe.Name)
	assert.Equal(t, int64(2), europe.CampCount, "counts are per node, not summed from children")
	require.Len(t, europe.Children, 1)

	france := europe.Children[0]
	assert.Equal(t, "France", france.Name)
	require.Len(t, france.Children, 1)

	provence := france.Children[0]
	require.Len(t, provence.Children, 1)
	assert.Equal(t, "Aix", provence.Children[0].Name)
	assert.Empty(t, provence.Children[0].Children, "nesting stops below the third level")

	assert.Equal(t, "Asia", tree[1].Name)
	assert.Empty(t, tree[1].Children)
}

func TestRegionService_CreateRegion(t *testing.T) {
	t.Run("rejects a dangling parent", func(t *testing.T) {
		svc := NewRegionService(newFakeRegionRepo())

		_, err := svc.CreateRegion(context.Background(), domain.Region{Name: "France", Slug: "france", ParentID: ptr(99)})

		assert.ErrorIs(t, err, ErrRegionParentNotFound)
	})

	t.Run("creates a root region", func(t *testing.T) {
		svc := NewRegionService(newFakeRegionRepo())

		region, err := svc.CreateRegion(context.Background(), domain.Region{Name: "Europe", Slug: "europe"})

		require.NoError(t, err)
		assert.NotZero(t, region.ID)
	})
}

func TestRegionService_UpdateRegion(t *testing.T) {
	repo := newFakeRegionRepo(
		domain.Region{ID: 1, Name: "Europe", Slug: "europe"},
		domain.Region{ID: 2, Name: "France", Slug: "france", ParentID: ptr(1)},
	)
	svc := NewRegionService(repo)

	t.Run("rejects self parenting", func(t *testing.T) {
		_, err := svc.UpdateRegion(context.Background(), domain.Region{ID: 2, Name: "France", Slug: "france", ParentID: ptr(2)})

		assert.ErrorIs(t, err, ErrRegionOwnParent)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := svc.UpdateRegion(context.Background(), domain.Region{ID: 99, Name: "Nowhere", Slug: "nowhere"})

		assert.ErrorIs(t, err, ErrRegionNotFound)
	})

	t.Run("re-parents under an existing region", func(t *testing.T) {
		updated, err := svc.UpdateRegion(context.Background(), domain.Region{ID: 2, Name: "France", Slug: "france", ParentID: ptr(1)})

		require.NoError(t, err)
		assert.Equal(t, uint(1), *updated.ParentID)
	})
}

func TestRegionService_GetRegionBySlug(t *testing.T) {
	repo := newFakeRegionRepo(
		domain.Region{ID: 1, Name: "Europe", Slug: "europe", CampCount: 3},
		domain.Region{ID: 2, Name: "France", Slug: "france", ParentID: ptr(1)},
		domain.Region{ID: 3, Name: "Spain", Slug: "spain", ParentID: ptr(1)},
	)
	svc := NewRegionService(repo)

	region, err := svc.GetRegionBySlug(context.Background(), "europe")

	require.NoError(t, err)
	assert.Equal(t, int64(3), region.CampCount)
	assert.Len(t, region.Children, 2)
}
