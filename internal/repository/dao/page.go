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
	ErrPageNotFound   = errors.New("page not found")
	ErrPageSlugExists = errors.New("a page with this slug already exists")
)

type Page struct {
	ID uint `gorm:"primaryKey"`

	Title     string `gorm:"not null"`
	Slug      string `gorm:"unique;not null"`
	Content   string `gorm:"type:text"`
	Published bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PageDAO struct {
	db *gorm.DB
}

func NewPageDAO(db *gorm.DB) *PageDAO {
	return &PageDAO{
		db: db,
	}
}

func (d *PageDAO) Insert(ctx context.Context, page Page) (Page, error) {
	result := d.db.WithContext(ctx).Create(&page)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Page{}, ErrPageSlugExists
		}

		return Page{}, result.Error
	}

	return page, nil
}

func (d *PageDAO) Update(ctx context.Context, page Page) (Page, error) {
	result := d.db.WithContext(ctx).Model(&Page{ID: page.ID}).
		Select("Title", "Slug", "Content", "Published").
		Updates(page)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Page{}, ErrPageSlugExists
		}

		return Page{}, result.Error
	}

	return d.FindByID(ctx, page.ID)
}

func (d *PageDAO) FindByID(ctx context.Context, id uint) (Page, error) {
	var page Page

	result := d.db.WithContext(ctx).First(&page, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Page{}, ErrPageNotFound
		}

		return Page{}, result.Error
	}

	return page, nil
}

func (d *PageDAO) FindBySlug(ctx context.Context, slug string) (Page, error) {
	var page Page

	result := d.db.WithContext(ctx).First(&page, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Page{}, ErrPageNotFound
		}

		return Page{}, result.Error
	}

	return page, nil
}

func (d *PageDAO) FindAll(ctx context.Context) ([]Page, error) {
	var pages []Page

	result := d.db.WithContext(ctx).Order("title ASC").Find(&pages)
	if result.Error != nil {
		return nil, result.Error
	}

	return pages, nil
}

func (d *PageDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Page{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}

	return nil
}
