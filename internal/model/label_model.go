package model

import (
	"time"

	"github.com/google/uuid"
)

type Label struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_labels_owner_name,priority:1"`
	Name      string    `gorm:"type:varchar(15);not null;uniqueIndex:idx_labels_owner_name,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Label) TableName() string {
	return "labels"
}

type NoteLabel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_labels_pair,priority:1"`
	LabelId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_labels_pair,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteLabel) TableName() string {
	return "note_labels"
}
