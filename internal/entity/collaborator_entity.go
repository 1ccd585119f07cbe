package entity

import (
	"time"

	"github.com/google/uuid"
)

// Collaborator is a standing grant of read/update access to a note for the
// named email. Unique per (note, email).
type Collaborator struct {
	Id            uuid.UUID
	NoteId        uuid.UUID
	Email         string
	InviterUserId uuid.UUID
	CreatedAt     time.Time
}
