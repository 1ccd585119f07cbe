package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=50"`
	Description string   `json:"description" validate:"required,min=3,max=1000"`
	Labels      []string `json:"labels" validate:"omitempty,dive,min=2,max=15"`
}

type UpdateNoteRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required,min=2,max=50"`
	Description string    `json:"description" validate:"required,min=3,max=1000"`
}

type NoteResponse struct {
	Id          uuid.UUID  `json:"id"`
	UserId      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Pin         bool       `json:"pin"`
	Archive     bool       `json:"archive"`
	Trash       bool       `json:"trash"`
	Colour      *string    `json:"colour"`
	Reminder    *time.Time `json:"reminder"`
	Labels      []string   `json:"labels,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ColourNoteRequest struct {
	Id     uuid.UUID `json:"-"`
	Colour string    `json:"colour" validate:"required"`
}

type ReminderRequest struct {
	Id       uuid.UUID `json:"-"`
	Reminder time.Time `json:"reminder" validate:"required"`
}

type SearchNotesRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

type PaginatedNotesResponse struct {
	Notes       []*NoteResponse `json:"notes"`
	Page        int             `json:"page"`
	PerPage     int             `json:"per_page"`
	TotalPages  int             `json:"total_pages"`
	TotalItems  int64           `json:"total_items"`
	HasNextPage bool            `json:"has_next_page"`
}
