package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLabelRequest struct {
	Name string `json:"labelname" validate:"required,min=2,max=15"`
}

type UpdateLabelRequest struct {
	Id   uuid.UUID `json:"-"`
	Name string    `json:"labelname" validate:"required,min=2,max=15"`
}

type LabelResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    uuid.UUID  `json:"user_id"`
	Name      string     `json:"labelname"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type AttachLabelRequest struct {
	NoteId  uuid.UUID `json:"-"`
	LabelId uuid.UUID `json:"-"`
}
