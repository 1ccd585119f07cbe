package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteByID qualifies the id filter with the notes table. The generic ByID
// would be ambiguous once VisibleToUser joins collaborators, which carries
// an id column of its own.
type NoteByID struct {
	ID uuid.UUID
}

func (s NoteByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id = ?", s.ID)
}

type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// VisibleToUser matches notes the user owns or collaborates on. The join
// duplicates rows when a note has several collaborators, hence the Distinct.
type VisibleToUser struct {
	UserID uuid.UUID
	Email  string
}

func (s VisibleToUser) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("LEFT JOIN collaborators ON collaborators.note_id = notes.id").
		Where("notes.user_id = ? OR collaborators.email = ?", s.UserID, s.Email).
		Distinct("notes.*")
}

type InTrash struct {
	Trash bool
}

func (s InTrash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.trash = ?", s.Trash)
}

type Archived struct {
	Archive bool
}

func (s Archived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.archive = ?", s.Archive)
}

type Pinned struct {
	Pin bool
}

func (s Pinned) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.pin = ?", s.Pin)
}

type WithReminder struct{}

func (s WithReminder) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.reminder IS NOT NULL")
}
