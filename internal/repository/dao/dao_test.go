package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camlisting/camlisting/internal/db"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker is not available, dao tests will be skipped: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=camlisting",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=camlisting_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://camlisting:secret@%s/camlisting_test?sslmode=disable",
		resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		testDB, err = db.OpenPostgresWithURL(dsn)
		if err != nil {
			return err
		}

		sqlDB, err := testDB.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres container: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()

	if testDB == nil {
		t.Skip("docker is not available")
	}
}

// seedCampRefs inserts the region, camp type and category a camp needs,
// with slugs prefixed so tests sharing the database do not collide.
func seedCampRefs(t *testing.T, prefix string) (Region, CampType, CampCategory) {
	t.Helper()

	ctx := context.Background()

	region, err := NewRegionDAO(testDB).Insert(ctx, Region{
		Name: prefix + " Region", Slug: prefix + "-region",
	})
	require.NoError(t, err)

	lookups := NewLookupDAO(testDB)
	campType, err := lookups.InsertType(ctx, CampType{
		Name: prefix + " Type", Slug: prefix + "-type",
	})
	require.NoError(t, err)

	category, err := lookups.InsertCategory(ctx, CampCategory{
		Name: prefix + " Category", Slug: prefix + "-category",
	})
	require.NoError(t, err)

	return region, campType, category
}

func TestCampDAO_InsertRejectsDuplicateSlug(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, _ := seedCampRefs(t, "dup")
	d := NewCampDAO(testDB)

	camp := Camp{
		Name: "Dup Camp", Slug: "dup-camp",
		RegionID: region.ID, CampTypeID: campType.ID,
	}

	_, err := d.Insert(ctx, camp, nil)
	require.NoError(t, err)

	_, err = d.Insert(ctx, camp, nil)
	assert.ErrorIs(t, err, ErrCampSlugExists)
}

func TestCampDAO_FindByIDLoadsAggregate(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, category := seedCampRefs(t, "agg")
	d := NewCampDAO(testDB)

	created, err := d.Insert(ctx, Camp{
		Name: "Aggregate Camp", Slug: "aggregate-camp",
		RegionID: region.ID, CampTypeID: campType.ID,
	}, []uint{category.ID})
	require.NoError(t, err)

	_, err = d.ReplaceActivities(ctx, created.ID, []Activity{
		{CampID: created.ID, Name: "Archery", SortOrder: 1},
		{CampID: created.ID, Name: "Swimming", SortOrder: 0},
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, region.Slug, found.Region.Slug)
	assert.Equal(t, campType.Slug, found.CampType.Slug)
	require.Len(t, found.Categories, 1)
	assert.Equal(t, category.Slug, found.Categories[0].Slug)

	require.Len(t, found.Activities, 2)
	assert.Equal(t, "Swimming", found.Activities[0].Name)
	assert.Equal(t, "Archery", found.Activities[1].Name)
}

func TestCampDAO_DeleteRemovesChildRows(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, _ := seedCampRefs(t, "del")
	d := NewCampDAO(testDB)

	created, err := d.Insert(ctx, Camp{
		Name: "Doomed Camp", Slug: "doomed-camp",
		RegionID: region.ID, CampTypeID: campType.ID,
	}, nil)
	require.NoError(t, err)

	start := time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)
	_, err = d.ReplaceSessions(ctx, created.ID, []CampSession{
		{CampID: created.ID, Name: "Week 1", StartDate: start, EndDate: start.AddDate(0, 0, 6), Price: 400, Currency: "EUR"},
	})
	require.NoError(t, err)

	_, err = NewInquiryDAO(testDB).Insert(ctx, Inquiry{
		Reference: "del-ref-1", CampID: created.ID,
		Name: "Jo", Email: "jo@example.com", Message: "Is week 1 full?", Status: "NEW",
	})
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err = d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrCampNotFound)

	var sessions int64
	require.NoError(t, testDB.Model(&CampSession{}).Where("camp_id = ?", created.ID).Count(&sessions).Error)
	assert.Zero(t, sessions)

	var inquiries int64
	require.NoError(t, testDB.Model(&Inquiry{}).Where("camp_id = ?", created.ID).Count(&inquiries).Error)
	assert.Zero(t, inquiries)

	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrCampNotFound)
}

func TestCampDAO_FindPage(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, _ := seedCampRefs(t, "page")
	d := NewCampDAO(testDB)
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	for i, published := range []bool{true, true, false} {
		_, err := d.Insert(ctx, Camp{
			Name: fmt.Sprintf("Page Camp %d", i), Slug: fmt.Sprintf("page-camp-%d", i),
			City:      "Annecy",
			Published: published,
			RegionID:  region.ID, CampTypeID: campType.ID,
		}, nil)
		require.NoError(t, err)
	}

	t.Run("published only within the region", func(t *testing.T) {
		camps, total, err := d.FindPage(ctx, CampFilter{
			RegionSlug: region.Slug, PublishedOnly: true, Page: 1, Limit: 10,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, camps, 2)
	})

	t.Run("admin listing sees drafts", func(t *testing.T) {
		_, total, err := d.FindPage(ctx, CampFilter{
			RegionSlug: region.Slug, Page: 1, Limit: 10,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("text search matches the city", func(t *testing.T) {
		_, total, err := d.FindPage(ctx, CampFilter{
			Search: "annecy", RegionSlug: region.Slug, PublishedOnly: true, Page: 1, Limit: 10,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestRegionDAO_DeleteGuards(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	d := NewRegionDAO(testDB)

	parent, err := d.Insert(ctx, Region{Name: "Guard Parent", Slug: "guard-parent"})
	require.NoError(t, err)

	child, err := d.Insert(ctx, Region{Name: "Guard Child", Slug: "guard-child", ParentID: &parent.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, d.Delete(ctx, parent.ID), ErrRegionHasChildren)

	campType, err := NewLookupDAO(testDB).InsertType(ctx, CampType{Name: "Guard Type", Slug: "guard-type"})
	require.NoError(t, err)

	_, err = NewCampDAO(testDB).Insert(ctx, Camp{
		Name: "Guard Camp", Slug: "guard-camp",
		RegionID: child.ID, CampTypeID: campType.ID,
	}, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Delete(ctx, child.ID), ErrRegionHasCamps)

	empty, err := d.Insert(ctx, Region{Name: "Guard Empty", Slug: "guard-empty"})
	require.NoError(t, err)
	assert.NoError(t, d.Delete(ctx, empty.ID))
	assert.ErrorIs(t, d.Delete(ctx, empty.ID), ErrRegionNotFound)
}

func TestCampDAO_FindPageOrder(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, _ := seedCampRefs(t, "order")
	d := NewCampDAO(testDB)

	day := func(n int) time.Time {
		return time.Date(2026, 5, n, 12, 0, 0, 0, time.UTC)
	}

	seed := []Camp{
		{Name: "Order A", Slug: "order-a", Featured: true, CreatedAt: day(2)},
		{Name: "Order B", Slug: "order-b", Featured: false, CreatedAt: day(3)},
		{Name: "Order C", Slug: "order-c", Featured: true, CreatedAt: day(1)},
	}
	for _, camp := range seed {
		camp.Published = true
		camp.RegionID = region.ID
		camp.CampTypeID = campType.ID
		_, err := d.Insert(ctx, camp, nil)
		require.NoError(t, err)
	}

	camps, _, err := d.FindPage(ctx, CampFilter{
		RegionSlug: region.Slug, PublishedOnly: true, Page: 1, Limit: 10,
	}, day(10))
	require.NoError(t, err)
	require.Len(t, camps, 3)

	// Featured camps first, newest first within each half.
	slugs := make([]string, len(camps))
	for i, camp := range camps {
		slugs[i] = camp.Slug
	}
	assert.Equal(t, []string{"order-a", "order-c", "order-b"}, slugs)
}

func TestCampDAO_UpcomingSessionCutoff(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, _ := seedCampRefs(t, "cutoff")
	d := NewCampDAO(testDB)

	created, err := d.Insert(ctx, Camp{
		Name: "Cutoff Camp", Slug: "cutoff-camp", Published: true,
		RegionID: region.ID, CampTypeID: campType.ID,
	}, nil)
	require.NoError(t, err)

	_, err = d.ReplaceSessions(ctx, created.ID, []CampSession{
		{CampID: created.ID, Name: "Ended Week",
			StartDate: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Price:     300, Currency: "EUR"},
		{CampID: created.ID, Name: "Upcoming Week",
			StartDate: time.Date(2026, 5, 25, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Price:     350, Currency: "EUR"},
	})
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	found, err := d.FindBySlug(ctx, "cutoff-camp", now)
	require.NoError(t, err)
	require.Len(t, found.Sessions, 1)
	assert.Equal(t, "Upcoming Week", found.Sessions[0].Name)

	camps, _, err := d.FindPage(ctx, CampFilter{
		RegionSlug: region.Slug, PublishedOnly: true, Page: 1, Limit: 10,
	}, now)
	require.NoError(t, err)
	require.Len(t, camps, 1)
	require.Len(t, camps[0].Sessions, 1)
	assert.Equal(t, "Upcoming Week", camps[0].Sessions[0].Name)
}

func TestLookupDAO_CountPublishedCampsByCategory(t *testing.T) {
	requireDB(t)

	ctx := context.Background()
	region, campType, category := seedCampRefs(t, "catcount")
	campDAO := NewCampDAO(testDB)

	for i, published := range []bool{true, true, false} {
		_, err := campDAO.Insert(ctx, Camp{
			Name: fmt.Sprintf("Catcount Camp %d", i), Slug: fmt.Sprintf("catcount-camp-%d", i),
			Published: published,
			RegionID:  region.ID, CampTypeID: campType.ID,
		}, []uint{category.ID})
		require.NoError(t, err)
	}

	counts, err := NewLookupDAO(testDB).CountPublishedCampsByCategory(ctx)
	require.NoError(t, err)

	byCategory := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byCategory[c.CampCategoryID] = c.Count
	}
	assert.Equal(t, int64(2), byCategory[category.ID])
}
