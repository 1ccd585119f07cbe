package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notification row produced by the event worker.
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string
	Title     string
	Message   string
	Metadata  map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
