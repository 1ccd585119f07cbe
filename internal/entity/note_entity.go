package entity

import (
	"time"

	"fundoo-notes-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

// Note is the domain record for a single note. The pin/archive/trash flags
// form a small state machine; every transition goes through the methods below
// so the pin-archive mutual exclusion is enforced in exactly one place.
type Note struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Pin         bool
	Archive     bool
	Trash       bool
	Colour      *string
	Reminder    *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// SetPin pins or unpins the note. Pinning an archived note clears the
// archive flag first; pin and archive are never both set.
func (n *Note) SetPin(pinned bool) error {
	if n.Pin == pinned {
		if pinned {
			return apperror.AlreadyInState("Note already pinned")
		}
		return apperror.AlreadyInState("Note already unpinned")
	}
	if pinned {
		n.Archive = false
	}
	n.Pin = pinned
	return nil
}

// SetArchive archives or unarchives the note, clearing pin when archiving.
func (n *Note) SetArchive(archived bool) error {
	if n.Archive == archived {
		if archived {
			return apperror.AlreadyInState("Note already archived")
		}
		return apperror.AlreadyInState("Note already unarchived")
	}
	if archived {
		n.Pin = false
	}
	n.Archive = archived
	return nil
}

// MoveToTrash soft-deletes the note. Trashing clears the reminder and resets
// the display flags; a later restore does not bring the reminder back.
func (n *Note) MoveToTrash() error {
	if n.Trash {
		return apperror.AlreadyInState("Note already in trash")
	}
	n.Trash = true
	n.Reminder = nil
	n.Pin = false
	n.Archive = false
	return nil
}

// RestoreFromTrash reverses MoveToTrash. The reminder stays unset.
func (n *Note) RestoreFromTrash() error {
	if !n.Trash {
		return apperror.AlreadyInState("Note is not in trash")
	}
	n.Trash = false
	return nil
}

// AddReminder sets a reminder on a note that has none.
func (n *Note) AddReminder(at time.Time) error {
	if n.Reminder != nil {
		return apperror.PreconditionFailed("Note already has a reminder")
	}
	n.Reminder = &at
	return nil
}

// EditReminder replaces an existing reminder.
func (n *Note) EditReminder(at time.Time) error {
	if n.Reminder == nil {
		return apperror.PreconditionFailed("Note has no reminder to update")
	}
	n.Reminder = &at
	return nil
}

// ClearReminder removes an existing reminder.
func (n *Note) ClearReminder() error {
	if n.Reminder == nil {
		return apperror.PreconditionFailed("Note has no reminder to delete")
	}
	n.Reminder = nil
	return nil
}

// SetColour stores the resolved rgb string for a palette colour.
func (n *Note) SetColour(rgb string) {
	n.Colour = &rgb
}
