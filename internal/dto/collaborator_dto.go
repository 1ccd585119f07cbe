package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddCollaboratorRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
}

type RemoveCollaboratorRequest struct {
	NoteId uuid.UUID `json:"note_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email"`
}

type CollaboratorResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
