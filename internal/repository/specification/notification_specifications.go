package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationForUser struct {
	UserID uuid.UUID
}

func (s NotificationForUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type Unread struct{}

func (s Unread) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}
