package entity

import (
	"testing"
	"time"

	"fundoo-notes-be/internal/pkg/apperror"
)

func reminderIn(d time.Duration) *time.Time {
	at := time.Now().Add(d)
	return &at
}

func TestNoteSetPin(t *testing.T) {
	tests := []struct {
		name        string
		note        Note
		pinned      bool
		wantErrCode apperror.Code
		wantPin     bool
		wantArchive bool
	}{
		{
			name:    "pin plain note",
			note:    Note{},
			pinned:  true,
			wantPin: true,
		},
		{
			name:        "pin archived note clears archive",
			note:        Note{Archive: true},
			pinned:      true,
			wantPin:     true,
			wantArchive: false,
		},
		{
			name:        "pin already pinned note",
			note:        Note{Pin: true},
			pinned:      true,
			wantErrCode: apperror.CodeAlreadyInState,
			wantPin:     true,
		},
		{
			name:    "unpin pinned note",
			note:    Note{Pin: true},
			pinned:  false,
			wantPin: false,
		},
		{
			name:        "unpin already unpinned note",
			note:        Note{},
			pinned:      false,
			wantErrCode: apperror.CodeAlreadyInState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.SetPin(tt.pinned)
			checkErrCode(t, err, tt.wantErrCode)
			if tt.note.Pin != tt.wantPin {
				t.Errorf("Pin = %v, want %v", tt.note.Pin, tt.wantPin)
			}
			if tt.note.Archive != tt.wantArchive {
				t.Errorf("Archive = %v, want %v", tt.note.Archive, tt.wantArchive)
			}
		})
	}
}

func TestNoteSetArchive(t *testing.T) {
	tests := []struct {
		name        string
		note        Note
		archived    bool
		wantErrCode apperror.Code
		wantPin     bool
		wantArchive bool
	}{
		{
			name:        "archive plain note",
			note:        Note{},
			archived:    true,
			wantArchive: true,
		},
		{
			name:        "archive pinned note clears pin",
			note:        Note{Pin: true},
			archived:    true,
			wantPin:     false,
			wantArchive: true,
		},
		{
			name:        "archive already archived note",
			note:        Note{Archive: true},
			archived:    true,
			wantErrCode: apperror.CodeAlreadyInState,
			wantArchive: true,
		},
		{
			name:     "unarchive archived note",
			note:     Note{Archive: true},
			archived: false,
		},
		{
			name:        "unarchive already unarchived note",
			note:        Note{},
			archived:    false,
			wantErrCode: apperror.CodeAlreadyInState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.SetArchive(tt.archived)
			checkErrCode(t, err, tt.wantErrCode)
			if tt.note.Pin != tt.wantPin {
				t.Errorf("Pin = %v, want %v", tt.note.Pin, tt.wantPin)
			}
			if tt.note.Archive != tt.wantArchive {
				t.Errorf("Archive = %v, want %v", tt.note.Archive, tt.wantArchive)
			}
		})
	}
}

func TestNoteMoveToTrash(t *testing.T) {
	note := Note{Pin: true, Reminder: reminderIn(time.Hour)}

	if err := note.MoveToTrash(); err != nil {
		t.Fatalf("MoveToTrash() error = %v", err)
	}
	if !note.Trash {
		t.Error("Trash = false, want true")
	}
	if note.Pin || note.Archive {
		t.Errorf("Pin = %v, Archive = %v, want both false", note.Pin, note.Archive)
	}
	if note.Reminder != nil {
		t.Error("Reminder survived trashing, want nil")
	}

	err := note.MoveToTrash()
	checkErrCode(t, err, apperror.CodeAlreadyInState)
}

func TestNoteRestoreFromTrash(t *testing.T) {
	note := Note{Reminder: reminderIn(time.Hour)}
	if err := note.MoveToTrash(); err != nil {
		t.Fatalf("MoveToTrash() error = %v", err)
	}

	if err := note.RestoreFromTrash(); err != nil {
		t.Fatalf("RestoreFromTrash() error = %v", err)
	}
	if note.Trash {
		t.Error("Trash = true, want false")
	}
	// Trashing drops the reminder for good.
	if note.Reminder != nil {
		t.Error("Reminder came back after restore, want nil")
	}

	err := note.RestoreFromTrash()
	checkErrCode(t, err, apperror.CodeAlreadyInState)
}

func TestNoteReminderLifecycle(t *testing.T) {
	note := Note{}
	first := time.Now().Add(time.Hour)
	second := time.Now().Add(2 * time.Hour)

	checkErrCode(t, note.EditReminder(first), apperror.CodePreconditionFailed)
	checkErrCode(t, note.ClearReminder(), apperror.CodePreconditionFailed)

	if err := note.AddReminder(first); err != nil {
		t.Fatalf("AddReminder() error = %v", err)
	}
	checkErrCode(t, note.AddReminder(second), apperror.CodePreconditionFailed)

	if err := note.EditReminder(second); err != nil {
		t.Fatalf("EditReminder() error = %v", err)
	}
	if !note.Reminder.Equal(second) {
		t.Errorf("Reminder = %v, want %v", note.Reminder, second)
	}

	if err := note.ClearReminder(); err != nil {
		t.Fatalf("ClearReminder() error = %v", err)
	}
	if note.Reminder != nil {
		t.Error("Reminder still set after ClearReminder()")
	}
}

func checkErrCode(t *testing.T, err error, want apperror.Code) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	appErr := apperror.From(err)
	if appErr == nil {
		t.Fatalf("error = %v, want AppError with code %s", err, want)
	}
	if appErr.Code != want {
		t.Fatalf("error code = %s, want %s", appErr.Code, want)
	}
}
