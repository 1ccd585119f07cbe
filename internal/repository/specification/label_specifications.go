package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabelOwnedByUser struct {
	UserID uuid.UUID
}

func (s LabelOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("labels.user_id = ?", s.UserID)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type ByLabelID struct {
	LabelID uuid.UUID
}

func (s ByLabelID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("label_id = ?", s.LabelID)
}
