package dao

import "gorm.io/gorm"

// CampFilter is the closed set of listing predicates. Zero values mean
// "not filtered".
type CampFilter struct {
	Search        string
	RegionSlug    string
	TypeSlug      string
	CategorySlug  string
	PublishedOnly bool
	Page          int
	Limit         int
}

type campScope = func(*gorm.DB) *gorm.DB

func byPublished(db *gorm.DB) *gorm.DB {
	return db.Where("camps.published = ?", true)
}

// byText matches case-insensitively against name, description and city
// as an OR.
func byText(search string) campScope {
	like := "%" + search + "%"

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("camps.name ILIKE ? OR camps.description ILIKE ? OR camps.city ILIKE ?",
			like, like, like)
	}
}

func byRegionSlug(slug string) campScope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN regions ON regions.id = camps.region_id").
			Where("regions.slug = ?", slug)
	}
}

func byTypeSlug(slug string) campScope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN camp_types ON camp_types.id = camps.camp_type_id").
			Where("camp_types.slug = ?", slug)
	}
}

func byCategorySlug(slug string) campScope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`camps.id IN (
			SELECT ccr.camp_id FROM camp_category_relations ccr
			JOIN camp_categories cc ON cc.id = ccr.camp_category_id
			WHERE cc.slug = ?)`, slug)
	}
}

// campFilterScopes ANDs together whichever predicates are present.
func campFilterScopes(f CampFilter) []campScope {
	scopes := make([]campScope, 0, 5)

	if f.PublishedOnly {
		scopes = append(scopes, byPublished)
	}
	if f.Search != "" {
		scopes = append(scopes, byText(f.Search))
	}
	if f.RegionSlug != "" {
		scopes = append(scopes, byRegionSlug(f.RegionSlug))
	}
	if f.TypeSlug != "" {
		scopes = append(scopes, byTypeSlug(f.TypeSlug))
	}
	if f.CategorySlug != "" {
		scopes = append(scopes, byCategorySlug(f.CategorySlug))
	}

	return scopes
}
