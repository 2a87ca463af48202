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
	ErrCampTypeNotFound   = errors.New("camp type not found")
	ErrCampTypeSlugExists = errors.New("a camp type with this slug already exists")
	ErrCampTypeInUse      = errors.New("cannot delete camp type referenced by camps")

	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategorySlugExists = errors.New("a category with this slug already exists")
	ErrCategoryInUse      = errors.New("cannot delete category referenced by camps")
)

type CampType struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"not null"`
	Slug      string `gorm:"unique;not null"`
	Icon      string
	SortOrder int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampCategory struct {
	ID uint `gorm:"primaryKey"`

	Name      string `gorm:"not null"`
	Slug      string `gorm:"unique;not null"`
	SortOrder int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TypeCampCount pairs a camp type with its published camp count.
type TypeCampCount struct {
	CampTypeID uint
	Count      int64
}

// CategoryCampCount pairs a category with its published camp count.
type CategoryCampCount struct {
	CampCategoryID uint
	Count          int64
}

type LookupDAO struct {
	db *gorm.DB
}

func NewLookupDAO(db *gorm.DB) *LookupDAO {
	return &LookupDAO{
		db: db,
	}
}

func (d *LookupDAO) InsertType(ctx context.Context, ct CampType) (CampType, error) {
	result := d.db.WithContext(ctx).Create(&ct)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return CampType{}, ErrCampTypeSlugExists
		}

		return CampType{}, result.Error
	}

	return ct, nil
}

func (d *LookupDAO) UpdateType(ctx context.Context, ct CampType) (CampType, error) {
	result := d.db.WithContext(ctx).Model(&CampType{ID: ct.ID}).
		Select("Name", "Slug", "Icon", "SortOrder").
		Updates(ct)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return CampType{}, ErrCampTypeSlugExists
		}

		return CampType{}, result.Error
	}

	return d.FindTypeByID(ctx, ct.ID)
}

func (d *LookupDAO) FindTypeByID(ctx context.Context, id uint) (CampType, error) {
	var ct CampType

	result := d.db.WithContext(ctx).First(&ct, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CampType{}, ErrCampTypeNotFound
		}

		return CampType{}, result.Error
	}

	return ct, nil
}

func (d *LookupDAO) FindTypeBySlug(ctx context.Context, slug string) (CampType, error) {
	var ct CampType

	result := d.db.WithContext(ctx).First(&ct, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CampType{}, ErrCampTypeNotFound
		}

		return CampType{}, result.Error
	}

	return ct, nil
}

func (d *LookupDAO) FindAllTypes(ctx context.Context) ([]CampType, error) {
	var types []CampType

	result := d.db.WithContext(ctx).Order("name ASC").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *LookupDAO) CountPublishedCampsByType(ctx context.Context) ([]TypeCampCount, error) {
	var counts []TypeCampCount

	result := d.db.WithContext(ctx).
		Model(&Camp{}).
		Select("camp_type_id AS camp_type_id, COUNT(*) AS count").
		Where("published = ?", true).
		Group("camp_type_id").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}

func (d *LookupDAO) DeleteType(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camps int64
		if err := tx.Model(&Camp{}).Where("camp_type_id = ?", id).Count(&camps).Error; err != nil {
			return err
		}
		if camps > 0 {
			return ErrCampTypeInUse
		}

		result := tx.Delete(&CampType{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCampTypeNotFound
		}

		return nil
	})
}

func (d *LookupDAO) InsertCategory(ctx context.Context, cat CampCategory) (CampCategory, error) {
	result := d.db.WithContext(ctx).Create(&cat)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return CampCategory{}, ErrCategorySlugExists
		}

		return CampCategory{}, result.Error
	}

	return cat, nil
}

func (d *LookupDAO) UpdateCategory(ctx context.Context, cat CampCategory) (CampCategory, error) {
	result := d.db.WithContext(ctx).Model(&CampCategory{ID: cat.ID}).
		Select("Name", "Slug", "SortOrder").
		Updates(cat)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return CampCategory{}, ErrCategorySlugExists
		}

		return CampCategory{}, result.Error
	}

	return d.FindCategoryByID(ctx, cat.ID)
}

func (d *LookupDAO) FindCategoryByID(ctx context.Context, id uint) (CampCategory, error) {
	var cat CampCategory

	result := d.db.WithContext(ctx).First(&cat, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CampCategory{}, ErrCategoryNotFound
		}

		return CampCategory{}, result.Error
	}

	return cat, nil
}

func (d *LookupDAO) FindAllCategories(ctx context.Context) ([]CampCategory, error) {
	var categories []CampCategory

	result := d.db.WithContext(ctx).Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *LookupDAO) CountPublishedCampsByCategory(ctx context.Context) ([]CategoryCampCount, error) {
	var counts []CategoryCampCount

	result := d.db.WithContext(ctx).
		Model(&CampCategoryRelation{}).
		Select("camp_category_relations.camp_category_id AS camp_category_id, COUNT(*) AS count").
		Joins("JOIN camps ON camps.id = camp_category_relations.camp_id").
		Where("camps.published = ?", true).
		Group("camp_category_relations.camp_category_id").
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}

func (d *LookupDAO) DeleteCategory(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var links int64
		if err := tx.Model(&CampCategoryRelation{}).Where("camp_category_id = ?", id).Count(&links).Error; err != nil {
			return err
		}
		if links > 0 {
			return ErrCategoryInUse
		}

		result := tx.Delete(&CampCategory{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		return nil
	})
}
