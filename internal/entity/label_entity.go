package entity

import (
	"time"

	"github.com/google/uuid"
)

type Label struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NoteLabel is the note-label association. A note carries a given label at
// most once.
type NoteLabel struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	LabelId   uuid.UUID
	CreatedAt time.Time
}
