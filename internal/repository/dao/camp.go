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
	ErrCampNotFound   = errors.New("camp not found")
	ErrCampSlugExists = errors.New("a camp with this slug already exists")
)

type Camp struct {
	ID uint `gorm:"primaryKey"`

	Name             string `gorm:"not null"`
	Slug             string `gorm:"unique;not null"`
	Description      string
	ShortDescription string
	Address          string
	City             string
	Country          string
	Latitude         float64
	Longitude        float64
	CoverImage       string
	Logo             string
	VideoURL         string
	Email            string
	Phone            string
	Website          string
	AgeMin           int
	AgeMax           int
	Published        bool `gorm:"not null;default:false;index"`
	Featured         bool `gorm:"not null;default:false"`

	RegionID   uint `gorm:"not null;index"`
	Region     Region
	CampTypeID uint `gorm:"not null;index"`
	CampType   CampType
	OwnerID    uint `gorm:"index"`

	Categories []CampCategory `gorm:"many2many:camp_category_relations;"`

	Sessions   []CampSession   `gorm:"foreignKey:CampID"`
	Gallery    []GalleryImage  `gorm:"foreignKey:CampID"`
	Activities []Activity      `gorm:"foreignKey:CampID"`
	Facilities []Facility      `gorm:"foreignKey:CampID"`
	Highlights []Highlight     `gorm:"foreignKey:CampID"`
	FAQs       []FAQ           `gorm:"foreignKey:CampID"`
	Schedule   []ScheduleEntry `gorm:"foreignKey:CampID"`
	Reviews    []Review        `gorm:"foreignKey:CampID"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampCategoryRelation struct {
	CampID         uint `gorm:"primaryKey"`
	CampCategoryID uint `gorm:"primaryKey"`
}

type CampSession struct {
	ID        uint      `gorm:"primaryKey"`
	CampID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index"`
	Price     float64   `gorm:"not null"`
	Currency  string    `gorm:"not null;default:USD"`
	SortOrder int       `gorm:"not null;default:0"`
}

type GalleryImage struct {
	ID        uint   `gorm:"primaryKey"`
	CampID    uint   `gorm:"not null;index"`
	URL       string `gorm:"not null"`
	Alt       string
	SortOrder int `gorm:"not null;default:0"`
}

type Activity struct {
	ID        uint   `gorm:"primaryKey"`
	CampID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

type Facility struct {
	ID        uint   `gorm:"primaryKey"`
	CampID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

type Highlight struct {
	ID        uint   `gorm:"primaryKey"`
	CampID    uint   `gorm:"not null;index"`
	Text      string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

type FAQ struct {
	ID        uint   `gorm:"primaryKey"`
	CampID    uint   `gorm:"not null;index"`
	Question  string `gorm:"not null"`
	Answer    string `gorm:"not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

type ScheduleEntry struct {
	ID          uint   `gorm:"primaryKey"`
	CampID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	SortOrder   int `gorm:"not null;default:0"`
}

type Review struct {
	ID        uint `gorm:"primaryKey"`
	CampID    uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null;index"`
	Author    User `gorm:"foreignKey:UserID"`
	Rating    int  `gorm:"not null"`
	Title     string
	Comment   string
	Approved  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampDAO struct {
	db *gorm.DB
}

func NewCampDAO(db *gorm.DB) *CampDAO {
	return &CampDAO{
		db: db,
	}
}

func sortOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

func upcomingSessions(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("end_date >= ?", now).Order("start_date ASC")
	}
}

// Insert creates the camp and its category links in one transaction.
// Child collections are not part of the create path.
func (d *CampDAO) Insert(ctx context.Context, camp Camp, categoryIDs []uint) (Camp, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&camp).Error; err != nil {
			return err
		}

		return insertCategoryLinks(tx, camp.ID, categoryIDs)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Camp{}, ErrCampSlugExists
		}

		return Camp{}, err
	}

	return camp, nil
}

// Update rewrites the camp row and replaces the category link set
// wholesale (delete all, then reinsert) in a single transaction.
func (d *CampDAO) Update(ctx context.Context, camp Camp, categoryIDs []uint) (Camp, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("camp_id = ?", camp.ID).Delete(&CampCategoryRelation{}).Error; err != nil {
			return err
		}

		result := tx.Model(&Camp{ID: camp.ID}).
			Select("Name", "Slug", "Description", "ShortDescription", "Address", "City",
				"Country", "Latitude", "Longitude", "CoverImage", "Logo", "VideoURL",
				"Email", "Phone", "Website", "AgeMin", "AgeMax", "Published", "Featured",
				"RegionID", "CampTypeID").
			Updates(camp)
		if result.Error != nil {
			return result.Error
		}

		return insertCategoryLinks(tx, camp.ID, categoryIDs)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Camp{}, ErrCampSlugExists
		}

		return Camp{}, err
	}

	return d.FindByID(ctx, camp.ID)
}

func insertCategoryLinks(tx *gorm.DB, campID uint, categoryIDs []uint) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]CampCategoryRelation, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		links[i] = CampCategoryRelation{CampID: campID, CampCategoryID: categoryID}
	}

	return tx.Create(&links).Error
}

// Delete removes every owned child row before the camp row itself, all in
// one transaction, so referential integrity holds without relying on
// cascade configuration.
func (d *CampDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&CampCategoryRelation{},
			&CampSession{},
			&GalleryImage{},
			&Activity{},
			&Facility{},
			&Highlight{},
			&FAQ{},
			&ScheduleEntry{},
			&Review{},
			&Inquiry{},
		}
		for _, model := range owned {
			if err := tx.Where("camp_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&Camp{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCampNotFound
		}

		return nil
	})
}

// FindByID loads the full aggregate for the admin area: every child
// collection, unapproved reviews included.
func (d *CampDAO) FindByID(ctx context.Context, id uint) (Camp, error) {
	var camp Camp

	result := d.db.WithContext(ctx).
		Preload("Region").
		Preload("CampType").
		Preload("Categories").
		Preload("Sessions", sortOrdered).
		Preload("Gallery", sortOrdered).
		Preload("Activities", sortOrdered).
		Preload("Facilities", sortOrdered).
		Preload("Highlights", sortOrdered).
		Preload("FAQs", sortOrdered).
		Preload("Schedule", sortOrdered).
		Preload("Reviews").
		Preload("Reviews.Author").
		First(&camp, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Camp{}, ErrCampNotFound
		}

		return Camp{}, result.Error
	}

	return camp, nil
}

// FindBySlug loads the public detail aggregate: children sort-ordered,
// sessions not yet ended earliest-first, reviews approved-only
// newest-first with their author.
func (d *CampDAO) FindBySlug(ctx context.Context, slug string, now time.Time) (Camp, error) {
	var camp Camp

	result := d.db.WithContext(ctx).
		Preload("Region").
		Preload("CampType").
		Preload("Categories").
		Preload("Sessions", upcomingSessions(now)).
		Preload("Gallery", sortOrdered).
		Preload("Activities", sortOrdered).
		Preload("Facilities", sortOrdered).
		Preload("Highlights", sortOrdered).
		Preload("FAQs", sortOrdered).
		Preload("Schedule", sortOrdered).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Where("approved = ?", true).Order("created_at DESC")
		}).
		Preload("Reviews.Author").
		First(&camp, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Camp{}, ErrCampNotFound
		}

		return Camp{}, result.Error
	}

	return camp, nil
}

func (d *CampDAO) FindSummaryBySlug(ctx context.Context, slug string) (Camp, error) {
	var camp Camp

	result := d.db.WithContext(ctx).First(&camp, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Camp{}, ErrCampNotFound
		}

		return Camp{}, result.Error
	}

	return camp, nil
}

// FindPage runs the listing query: filter scopes ANDed together, featured
// camps first, then newest first. Returns the page plus the total count of
// matching camps.
func (d *CampDAO) FindPage(ctx context.Context, filter CampFilter, now time.Time) ([]Camp, int64, error) {
	var (
		camps []Camp
		total int64
	)

	query := d.db.WithContext(ctx).Model(&Camp{}).Scopes(campFilterScopes(filter)...)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := query.
		Preload("Region").
		Preload("CampType").
		Preload("Sessions", upcomingSessions(now)).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "camp_id", "rating")
		}).
		Order("featured DESC").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&camps)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return camps, total, nil
}

func (d *CampDAO) FindFeatured(ctx context.Context, now time.Time, limit int) ([]Camp, error) {
	var camps []Camp

	result := d.db.WithContext(ctx).
		Where("published = ? AND featured = ?", true, true).
		Preload("Region").
		Preload("CampType").
		Preload("Sessions", upcomingSessions(now)).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "camp_id", "rating")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&camps)
	if result.Error != nil {
		return nil, result.Error
	}

	return camps, nil
}

// FindRelated returns published camps sharing the region or the type,
// excluding the camp itself, featured first.
func (d *CampDAO) FindRelated(ctx context.Context, campID, regionID, campTypeID uint, now time.Time, limit int) ([]Camp, error) {
	var camps []Camp

	result := d.db.WithContext(ctx).
		Where("published = ? AND id <> ?", true, campID).
		Where("region_id = ? OR camp_type_id = ?", regionID, campTypeID).
		Preload("Region").
		Preload("CampType").
		Preload("Sessions", upcomingSessions(now)).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "camp_id", "rating")
		}).
		Order("featured DESC").
		Limit(limit).
		Find(&camps)
	if result.Error != nil {
		return nil, result.Error
	}

	return camps, nil
}

// Child collection replacement. Each call deletes the existing rows for
// the camp and reinserts the given set in one transaction.

func (d *CampDAO) ReplaceSessions(ctx context.Context, campID uint, rows []CampSession) ([]CampSession, error) {
	err := replaceOwned(ctx, d.db, campID, &CampSession{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceGallery(ctx context.Context, campID uint, rows []GalleryImage) ([]GalleryImage, error) {
	err := replaceOwned(ctx, d.db, campID, &GalleryImage{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceActivities(ctx context.Context, campID uint, rows []Activity) ([]Activity, error) {
	err := replaceOwned(ctx, d.db, campID, &Activity{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceFacilities(ctx context.Context, campID uint, rows []Facility) ([]Facility, error) {
	err := replaceOwned(ctx, d.db, campID, &Facility{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceHighlights(ctx context.Context, campID uint, rows []Highlight) ([]Highlight, error) {
	err := replaceOwned(ctx, d.db, campID, &Highlight{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceFAQs(ctx context.Context, campID uint, rows []FAQ) ([]FAQ, error) {
	err := replaceOwned(ctx, d.db, campID, &FAQ{}, &rows)
	return rows, err
}

func (d *CampDAO) ReplaceSchedule(ctx context.Context, campID uint, rows []ScheduleEntry) ([]ScheduleEntry, error) {
	err := replaceOwned(ctx, d.db, campID, &ScheduleEntry{}, &rows)
	return rows, err
}

func replaceOwned[T any](ctx context.Context, db *gorm.DB, campID uint, model any, rows *[]T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("camp_id = ?", campID).Delete(model).Error; err != nil {
			return err
		}
		if len(*rows) == 0 {
			return nil
		}

		return tx.Create(rows).Error
	})
}
