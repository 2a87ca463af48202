package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Camp{}, "Categories", &CampCategoryRelation{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&User{},
		&Region{},
		&CampType{},
		&CampCategory{},
		&Camp{},
		&CampSession{},
		&GalleryImage{},
		&Activity{},
		&Facility{},
		&Highlight{},
		&FAQ{},
		&ScheduleEntry{},
		&Review{},
		&Inquiry{},
		&Page{},
	)
}
