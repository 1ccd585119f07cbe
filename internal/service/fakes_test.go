package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/repository/contract"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore backs the in-memory repositories used by the service tests. The
// repositories interpret the same specification types the gorm ones do.
type fakeStore struct {
	mu sync.Mutex

	users              []*entity.User
	verificationTokens []*entity.EmailVerificationToken
	resetTokens        []*entity.PasswordResetToken
	notes              []*entity.Note
	labels             []*entity.Label
	noteLabels         []*entity.NoteLabel
	collaborators      []*entity.Collaborator
	notifications      []*entity.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(_ context.Context) error { return nil }
func (u *fakeUow) Commit() error                 { return nil }
func (u *fakeUow) Rollback() error               { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) TokenRepository() contract.TokenRepository {
	return &fakeTokenRepo{store: u.store}
}

func (u *fakeUow) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

func (u *fakeUow) LabelRepository() contract.LabelRepository {
	return &fakeLabelRepo{store: u.store}
}

func (u *fakeUow) NoteLabelRepository() contract.NoteLabelRepository {
	return &fakeNoteLabelRepo{store: u.store}
}

func (u *fakeUow) CollaboratorRepository() contract.CollaboratorRepository {
	return &fakeCollaboratorRepo{store: u.store}
}

func (u *fakeUow) NotificationRepository() contract.NotificationRepository {
	return &fakeNotificationRepo{store: u.store}
}

// --- users ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) matches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.Id == user.Id {
			cp := *user
			r.store.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.Id == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.User
	for _, u := range r.store.users {
		if r.matches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- tokens ---

type fakeTokenRepo struct {
	store *fakeStore
}

func (r *fakeTokenRepo) CreateVerificationToken(_ context.Context, token *entity.EmailVerificationToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *token
	r.store.verificationTokens = append(r.store.verificationTokens, &cp)
	return nil
}

func (r *fakeTokenRepo) FindVerificationToken(_ context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.verificationTokens {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByToken:
				if t.Token != s.Token {
					ok = false
				}
			case specification.TokenForUser:
				if t.UserId != s.UserID {
					ok = false
				}
			case specification.NotExpired:
				if !t.ExpiresAt.After(s.Now) {
					ok = false
				}
			}
		}
		if ok {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) DeleteVerificationTokensForUser(_ context.Context, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.EmailVerificationToken
	for _, t := range r.store.verificationTokens {
		if t.UserId != userId {
			kept = append(kept, t)
		}
	}
	r.store.verificationTokens = kept
	return nil
}

func (r *fakeTokenRepo) CreateResetToken(_ context.Context, token *entity.PasswordResetToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *token
	r.store.resetTokens = append(r.store.resetTokens, &cp)
	return nil
}

func (r *fakeTokenRepo) FindResetToken(_ context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.resetTokens {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByToken:
				if t.Token != s.Token {
					ok = false
				}
			case specification.TokenForUser:
				if t.UserId != s.UserID {
					ok = false
				}
			case specification.NotExpired:
				if !t.ExpiresAt.After(s.Now) {
					ok = false
				}
			case specification.NotUsed:
				if t.Used {
					ok = false
				}
			}
		}
		if ok {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTokenRepo) UpdateResetToken(_ context.Context, token *entity.PasswordResetToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, t := range r.store.resetTokens {
		if t.Id == token.Id {
			cp := *token
			r.store.resetTokens[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteResetTokensForUser(_ context.Context, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.PasswordResetToken
	for _, t := range r.store.resetTokens {
		if t.UserId != userId {
			kept = append(kept, t)
		}
	}
	r.store.resetTokens = kept
	return nil
}

// --- notes ---

type fakeNoteRepo struct {
	store *fakeStore
}

// collaboratorEmails returns the emails granted access to the note. Caller
// must hold the store lock.
func (r *fakeNoteRepo) collaboratorEmails(noteId uuid.UUID) map[string]bool {
	out := map[string]bool{}
	for _, c := range r.store.collaborators {
		if c.NoteId == noteId {
			out[c.Email] = true
		}
	}
	return out
}

func (r *fakeNoteRepo) labelNames(noteId uuid.UUID) []string {
	var names []string
	for _, nl := range r.store.noteLabels {
		if nl.NoteId != noteId {
			continue
		}
		for _, l := range r.store.labels {
			if l.Id == nl.LabelId {
				names = append(names, l.Name)
			}
		}
	}
	return names
}

func (r *fakeNoteRepo) matches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.NoteByID:
			if n.Id != s.ID {
				return false
			}
		case specification.NoteOwnedByUser:
			if n.UserId != s.UserID {
				return false
			}
		case specification.VisibleToUser:
			if n.UserId != s.UserID && !r.collaboratorEmails(n.Id)[s.Email] {
				return false
			}
		case specification.InTrash:
			if n.Trash != s.Trash {
				return false
			}
		case specification.Archived:
			if n.Archive != s.Archive {
				return false
			}
		case specification.Pinned:
			if n.Pin != s.Pin {
				return false
			}
		case specification.WithReminder:
			if n.Reminder == nil {
				return false
			}
		case specification.MatchesQuery:
			if !r.matchesQuery(n, s.Query) {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteRepo) matchesQuery(n *entity.Note, query string) bool {
	if strings.Contains(n.Title, query) || strings.Contains(n.Description, query) {
		return true
	}
	for _, name := range r.labelNames(n.Id) {
		if strings.Contains(name, query) {
			return true
		}
	}
	return false
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *note
	r.store.notes = append(r.store.notes, &cp)
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, n := range r.store.notes {
		if n.Id == note.Id {
			cp := *note
			r.store.notes[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, n := range r.store.notes {
		if n.Id == id {
			r.store.notes = append(r.store.notes[:i], r.store.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range r.store.notes {
		if r.matches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Note
	for _, n := range r.store.notes {
		if r.matches(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	// Pinned first, newest first, mirroring the main listing order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pin != out[j].Pin {
			return out[i].Pin
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- labels ---

type fakeLabelRepo struct {
	store *fakeStore
}

func (r *fakeLabelRepo) matches(l *entity.Label, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if l.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if l.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.LabelOwnedByUser:
			if l.UserId != s.UserID {
				return false
			}
		case specification.ByName:
			if l.Name != s.Name {
				return false
			}
		}
	}
	return true
}

func (r *fakeLabelRepo) Create(_ context.Context, label *entity.Label) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *label
	r.store.labels = append(r.store.labels, &cp)
	return nil
}

func (r *fakeLabelRepo) Update(_ context.Context, label *entity.Label) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, l := range r.store.labels {
		if l.Id == label.Id {
			cp := *label
			r.store.labels[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeLabelRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, l := range r.store.labels {
		if l.Id == id {
			r.store.labels = append(r.store.labels[:i], r.store.labels[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeLabelRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Label, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.labels {
		if r.matches(l, specs) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLabelRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Label, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Label
	for _, l := range r.store.labels {
		if r.matches(l, specs) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeLabelRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- note labels ---

type fakeNoteLabelRepo struct {
	store *fakeStore
}

func (r *fakeNoteLabelRepo) matches(nl *entity.NoteLabel, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if nl.NoteId != s.NoteID {
				return false
			}
		case specification.ByLabelID:
			if nl.LabelId != s.LabelID {
				return false
			}
		}
	}
	return true
}

func (r *fakeNoteLabelRepo) Create(_ context.Context, noteLabel *entity.NoteLabel) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *noteLabel
	r.store.noteLabels = append(r.store.noteLabels, &cp)
	return nil
}

func (r *fakeNoteLabelRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, nl := range r.store.noteLabels {
		if nl.Id == id {
			r.store.noteLabels = append(r.store.noteLabels[:i], r.store.noteLabels[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNoteLabelRepo) DeleteAllByNoteId(_ context.Context, noteId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.NoteLabel
	for _, nl := range r.store.noteLabels {
		if nl.NoteId != noteId {
			kept = append(kept, nl)
		}
	}
	r.store.noteLabels = kept
	return nil
}

func (r *fakeNoteLabelRepo) DeleteAllByLabelId(_ context.Context, labelId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.NoteLabel
	for _, nl := range r.store.noteLabels {
		if nl.LabelId != labelId {
			kept = append(kept, nl)
		}
	}
	r.store.noteLabels = kept
	return nil
}

func (r *fakeNoteLabelRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.NoteLabel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, nl := range r.store.noteLabels {
		if r.matches(nl, specs) {
			cp := *nl
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteLabelRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.NoteLabel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.NoteLabel
	for _, nl := range r.store.noteLabels {
		if r.matches(nl, specs) {
			cp := *nl
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- collaborators ---

type fakeCollaboratorRepo struct {
	store *fakeStore
}

func (r *fakeCollaboratorRepo) matches(c *entity.Collaborator, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if c.NoteId != s.NoteID {
				return false
			}
		case specification.CollaboratorEmail:
			if c.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeCollaboratorRepo) Create(_ context.Context, collaborator *entity.Collaborator) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *collaborator
	r.store.collaborators = append(r.store.collaborators, &cp)
	return nil
}

func (r *fakeCollaboratorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, c := range r.store.collaborators {
		if c.Id == id {
			r.store.collaborators = append(r.store.collaborators[:i], r.store.collaborators[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCollaboratorRepo) DeleteAllByNoteId(_ context.Context, noteId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var kept []*entity.Collaborator
	for _, c := range r.store.collaborators {
		if c.NoteId != noteId {
			kept = append(kept, c)
		}
	}
	r.store.collaborators = kept
	return nil
}

func (r *fakeCollaboratorRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Collaborator, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.collaborators {
		if r.matches(c, specs) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCollaboratorRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Collaborator, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Collaborator
	for _, c := range r.store.collaborators {
		if r.matches(c, specs) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCollaboratorRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- notifications ---

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) matches(n *entity.Notification, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.NotificationForUser:
			if n.UserId != s.UserID {
				return false
			}
		case specification.Unread:
			if n.IsRead {
				return false
			}
		}
	}
	return true
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *notification
	r.store.notifications = append(r.store.notifications, &cp)
	return nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, notification *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, n := range r.store.notifications {
		if n.Id == notification.Id {
			cp := *notification
			r.store.notifications[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllReadForUser(_ context.Context, userId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := time.Now()
	for _, n := range r.store.notifications {
		if n.UserId == userId && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range r.store.notifications {
		if r.matches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.store.notifications {
		if r.matches(n, specs) {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- helpers ---

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
