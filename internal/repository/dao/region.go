package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRegionNotFound    = errors.New("region not found")
	ErrRegionSlugExists  = errors.New("a region with this slug already exists")
	ErrRegionHasChildren = errors.New("cannot delete region with child regions")
	ErrRegionHasCamps    = errors.New("cannot delete region with associated camps")
)

type Region struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Slug        string `gorm:"unique;not null"`
	Description string
	Image       string
	ParentID    *uint   `gorm:"index"`
	Parent      *Region `gorm:"foreignKey:ParentID"`
	SortOrder   int     `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// RegionCampCount pairs a region with the number of published camps
// attached directly to it.
type RegionCampCount struct {
	RegionID uint
	Count    int64
}

type RegionDAO struct {
	db *gorm.DB
}

func NewRegionDAO(db *gorm.DB) *RegionDAO {
	return &RegionDAO{
		db: db,
	}
}

func (d *RegionDAO) Insert(ctx context.Context, region Region) (Region, error) {
	result := d.db.WithContext(ctx).Create(&region)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Region{}, ErrRegionSlugExists
		}

		return Region{}, result.Error
	}

	return region, nil
}

func (d *RegionDAO) Update(ctx context.Context, region Region) (Region, error) {
	result := d.db.WithContext(ctx).Model(&Region{ID: region.ID}).
		Select("Name", "Slug", "Description", "Image", "ParentID", "SortOrder").
		Updates(region)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Region{}, ErrRegionSlugExists
		}

		return Region{}, result.Error
	}

	return d.FindByID(ctx, region.ID)
}

func (d *RegionDAO) FindByID(ctx context.Context, id uint) (Region, error) {
	var region Region

	result := d.db.WithContext(ctx).First(&region, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Region{}, ErrRegionNotFound
		}

		return Region{}, result.Error
	}

	return region, nil
}

func (d *RegionDAO) FindBySlug(ctx context.Context, slug string) (Region, error) {
	var region Region

	result := d.db.WithContext(ctx).Preload("Parent").First(&region, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Region{}, ErrRegionNotFound
		}

		return Region{}, result.Error
	}

	return region, nil
}

// FindAll returns every region, ordered for stable tree assembly.
func (d *RegionDAO) FindAll(ctx context.Context) ([]Region, error) {
	var regions []Region

	result := d.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&regions)
	if result.Error != nil {
		return nil, result.Error
	}

	return regions, nil
}

// CountPublishedCamps counts published camps per region, attached camps
// only (descendants are not summed).
func (d *RegionDAO) CountPublishedCamps(ctx context.Context) ([]RegionCampCount, error) {
	var counts []RegionCampCount

	result := d.db.WithContext(ctx).
		Model(&Camp{}).
		Select("region_id AS region_id, COUNT(*) AS count").
		Where("published = ?", true).
		Group("region_id").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}

// Delete removes a region unless it still has child regions or attached
// camps. The guards and the delete run in one transaction so a blocked
// delete leaves storage unchanged.
func (d *RegionDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var children int64
		if err := tx.Model(&Region{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return ErrRegionHasChildren
		}

		var camps int64
		if err := tx.Model(&Camp{}).Where("region_id = ?", id).Count(&camps).Error; err != nil {
			return err
		}
		if camps > 0 {
			return ErrRegionHasCamps
		}

		result := tx.Delete(&Region{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRegionNotFound
		}

		return nil
	})
}
