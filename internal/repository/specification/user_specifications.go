package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

type TokenForUser struct {
	UserID uuid.UUID
}

func (s TokenForUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type NotExpired struct {
	Now time.Time
}

func (s NotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}

type NotUsed struct{}

func (s NotUsed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("used = ?", false)
}
