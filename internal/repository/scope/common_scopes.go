package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// PinnedFirst keeps pinned notes at the top of any listing.
func PinnedFirst(db *gorm.DB) *gorm.DB {
	return db.Order("notes.pin DESC").Order("notes.created_at DESC")
}
