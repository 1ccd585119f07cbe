package model

import (
	"time"

	"github.com/google/uuid"
)

type Collaborator struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collaborators_note_email,priority:1"`
	Email         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_collaborators_note_email,priority:2;index"`
	InviterUserId uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Collaborator) TableName() string {
	return "collaborators"
}
