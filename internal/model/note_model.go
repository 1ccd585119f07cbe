package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:varchar(1000);not null"`
	Pin         bool       `gorm:"not null;default:false"`
	Archive     bool       `gorm:"not null;default:false"`
	Trash       bool       `gorm:"not null;default:false;index"`
	Colour      *string    `gorm:"type:varchar(30)"`
	Reminder    *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
