package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fundoo-notes-be/internal/constant"
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/repository/scope"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"
	"fundoo-notes-be/pkg/cache"
	"fundoo-notes-be/pkg/events"
	pktNats "fundoo-notes-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	notesPerPage  = 3
	notesCacheTTL = 10 * time.Minute
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, userId uuid.UUID, email string, page int) (*dto.PaginatedNotesResponse, error)
	Get(ctx context.Context, userId uuid.UUID, email string, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, email string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Search(ctx context.Context, userId uuid.UUID, email string, query string) ([]*dto.NoteResponse, error)

	SetPin(ctx context.Context, userId uuid.UUID, id uuid.UUID, pinned bool) error
	ListPinned(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	SetArchive(ctx context.Context, userId uuid.UUID, id uuid.UUID, archived bool) error
	ListArchived(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)

	Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListTrashed(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
	Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	SetColour(ctx context.Context, userId uuid.UUID, req *dto.ColourNoteRequest) error
	AddReminder(ctx context.Context, userId uuid.UUID, req *dto.ReminderRequest) error
	EditReminder(ctx context.Context, userId uuid.UUID, req *dto.ReminderRequest) error
	DeleteReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	ListReminders(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	cacheStore     cache.Store
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	cacheStore cache.Store,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		cacheStore:     cacheStore,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func notesViewKey(userId uuid.UUID) string {
	return fmt.Sprintf("notes:view:%s", userId)
}

// invalidateNoteCaches drops the cached listings of everyone who can see the
// note: the owner plus every collaborator with an account.
func (s *noteService) invalidateNoteCaches(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) {
	keys := []string{notesViewKey(note.UserId)}

	collaborators, err := uow.CollaboratorRepository().FindAll(ctx, specification.ByNoteID{NoteID: note.Id})
	if err != nil {
		s.log.Warn("note", "failed to list collaborators for cache invalidation", map[string]interface{}{
			"note_id": note.Id.String(),
			"error":   err.Error(),
		})
	}
	for _, c := range collaborators {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: c.Email})
		if err != nil || user == nil {
			continue
		}
		keys = append(keys, notesViewKey(user.Id))
	}

	if err := s.cacheStore.Delete(ctx, keys...); err != nil {
		s.log.Warn("note", "failed to invalidate note cache", map[string]interface{}{"error": err.Error()})
	}
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.log.Warn("note", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

// fetchOwnedNote loads a note the caller owns, or reports NotFound. Ownership
// failures are indistinguishable from missing notes on purpose.
func fetchOwnedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.NoteByID{ID: id},
		specification.NoteOwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}
	return note, nil
}

// fetchVisibleNote loads a note the caller owns or collaborates on.
func fetchVisibleNote(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, email string, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.NoteByID{ID: id},
		specification.VisibleToUser{UserID: userId, Email: email},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}
	return note, nil
}

func (s *noteService) noteLabels(ctx context.Context, uow unitofwork.UnitOfWork, noteId uuid.UUID) ([]string, error) {
	noteLabels, err := uow.NoteLabelRepository().FindAll(ctx, specification.ByNoteID{NoteID: noteId})
	if err != nil {
		return nil, err
	}
	if len(noteLabels) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(noteLabels))
	for i, nl := range noteLabels {
		ids[i] = nl.LabelId
	}

	labels, err := uow.LabelRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names, nil
}

func (s *noteService) toResponse(ctx context.Context, uow unitofwork.UnitOfWork, note *entity.Note) (*dto.NoteResponse, error) {
	labels, err := s.noteLabels(ctx, uow, note.Id)
	if err != nil {
		return nil, err
	}

	return &dto.NoteResponse{
		Id:          note.Id,
		UserId:      note.UserId,
		Title:       note.Title,
		Description: note.Description,
		Pin:         note.Pin,
		Archive:     note.Archive,
		Trash:       note.Trash,
		Colour:      note.Colour,
		Reminder:    note.Reminder,
		Labels:      labels,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}, nil
}

func (s *noteService) toResponses(ctx context.Context, uow unitofwork.UnitOfWork, notes []*entity.Note) ([]*dto.NoteResponse, error) {
	out := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		resp, err := s.toResponse(ctx, uow, n)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	note := &entity.Note{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	// Labels named in the request are created on the fly when the owner does
	// not have them yet.
	for _, name := range req.Labels {
		label, err := uow.LabelRepository().FindOne(ctx,
			specification.LabelOwnedByUser{UserID: userId},
			specification.ByName{Name: name},
		)
		if err != nil {
			return nil, err
		}
		if label == nil {
			label = &entity.Label{
				Id:        uuid.New(),
				UserId:    userId,
				Name:      name,
				CreatedAt: now,
			}
			if err := uow.LabelRepository().Create(ctx, label); err != nil {
				return nil, err
			}
		}

		noteLabel := &entity.NoteLabel{
			Id:        uuid.New(),
			NoteId:    note.Id,
			LabelId:   label.Id,
			CreatedAt: now,
		}
		if err := uow.NoteLabelRepository().Create(ctx, noteLabel); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateNoteCaches(ctx, uow, note)

	return s.toResponse(ctx, uow, note)
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, email string, page int) (*dto.PaginatedNotesResponse, error) {
	if page < 1 {
		page = 1
	}

	all, err := s.visibleNotes(ctx, userId, email)
	if err != nil {
		return nil, err
	}

	totalItems := int64(len(all))
	totalPages := (len(all) + notesPerPage - 1) / notesPerPage
	start := (page - 1) * notesPerPage
	end := start + notesPerPage
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	return &dto.PaginatedNotesResponse{
		Notes:       all[start:end],
		Page:        page,
		PerPage:     notesPerPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNextPage: page < totalPages,
	}, nil
}

// visibleNotes returns the caller's main view (owned or shared, not trashed,
// not archived, pinned first), served from cache when possible.
func (s *noteService) visibleNotes(ctx context.Context, userId uuid.UUID, email string) ([]*dto.NoteResponse, error) {
	key := notesViewKey(userId)

	if raw, found, err := s.cacheStore.Get(ctx, key); err == nil && found {
		var cached []*dto.NoteResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.VisibleToUser{UserID: userId, Email: email},
		specification.InTrash{Trash: false},
		specification.Archived{Archive: false},
		specification.WithScope(scope.PinnedFirst),
	)
	if err != nil {
		return nil, err
	}

	responses, err := s.toResponses(ctx, uow, notes)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(responses); err == nil {
		if err := s.cacheStore.Set(ctx, key, raw, notesCacheTTL); err != nil {
			s.log.Warn("note", "failed to cache notes view", map[string]interface{}{"error": err.Error()})
		}
	}

	return responses, nil
}

func (s *noteService) Get(ctx context.Context, userId uuid.UUID, email string, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchVisibleNote(ctx, uow, userId, email, id)
	if err != nil {
		return nil, err
	}

	return s.toResponse(ctx, uow, note)
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, email string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Collaborators may edit content, everything else is owner-only.
	note, err := fetchVisibleNote(ctx, uow, userId, email, req.Id)
	if err != nil {
		return nil, err
	}

	note.Title = req.Title
	note.Description = req.Description
	now := time.Now()
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.invalidateNoteCaches(ctx, uow, note)

	return s.toResponse(ctx, uow, note)
}

func (s *noteService) Search(ctx context.Context, userId uuid.UUID, email string, query string) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.VisibleToUser{UserID: userId, Email: email},
		specification.MatchesQuery{Query: query},
		specification.InTrash{Trash: false},
		specification.OrderBy{Field: "notes.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, uow, notes)
}

func (s *noteService) mutateOwned(ctx context.Context, userId, id uuid.UUID, mutate func(note *entity.Note) error) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := mutate(note); err != nil {
		return err
	}

	now := time.Now()
	note.UpdatedAt = &now
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return err
	}

	s.invalidateNoteCaches(ctx, uow, note)
	return nil
}

func (s *noteService) SetPin(ctx context.Context, userId uuid.UUID, id uuid.UUID, pinned bool) error {
	return s.mutateOwned(ctx, userId, id, func(note *entity.Note) error {
		if note.Trash {
			return apperror.PreconditionFailed("Note is in trash")
		}
		return note.SetPin(pinned)
	})
}

func (s *noteService) ListPinned(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.Pinned{Pin: true},
		specification.InTrash{Trash: false},
		specification.OrderBy{Field: "notes.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, uow, notes)
}

func (s *noteService) SetArchive(ctx context.Context, userId uuid.UUID, id uuid.UUID, archived bool) error {
	return s.mutateOwned(ctx, userId, id, func(note *entity.Note) error {
		if note.Trash {
			return apperror.PreconditionFailed("Note is in trash")
		}
		return note.SetArchive(archived)
	})
}

func (s *noteService) ListArchived(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.Archived{Archive: true},
		specification.InTrash{Trash: false},
		specification.OrderBy{Field: "notes.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, uow, notes)
}

func (s *noteService) Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	err := s.mutateOwned(ctx, userId, id, func(note *entity.Note) error {
		return note.MoveToTrash()
	})
	if err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeNoteTrashed, map[string]interface{}{
		"note_id": id.String(),
		"user_id": userId.String(),
	})
	return nil
}

func (s *noteService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return s.mutateOwned(ctx, userId, id, func(note *entity.Note) error {
		return note.RestoreFromTrash()
	})
}

func (s *noteService) ListTrashed(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.InTrash{Trash: true},
		specification.OrderBy{Field: "notes.created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, uow, notes)
}

// Purge permanently deletes a trashed note with its labels links and
// collaborator grants.
func (s *noteService) Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return err
	}
	if !note.Trash {
		return apperror.PreconditionFailed("Note must be in trash before deletion")
	}

	// Collect cache keys before rows disappear.
	s.invalidateNoteCaches(ctx, uow, note)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteLabelRepository().DeleteAllByNoteId(ctx, note.Id); err != nil {
		return err
	}
	if err := uow.CollaboratorRepository().DeleteAllByNoteId(ctx, note.Id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeNotePurged, map[string]interface{}{
		"note_id": id.String(),
		"user_id": userId.String(),
	})
	return nil
}

func (s *noteService) SetColour(ctx context.Context, userId uuid.UUID, req *dto.ColourNoteRequest) error {
	rgb, ok := constant.ResolveColour(req.Colour)
	if !ok {
		return apperror.UnknownColour()
	}

	return s.mutateOwned(ctx, userId, req.Id, func(note *entity.Note) error {
		note.SetColour(rgb)
		return nil
	})
}

func (s *noteService) AddReminder(ctx context.Context, userId uuid.UUID, req *dto.ReminderRequest) error {
	return s.mutateOwned(ctx, userId, req.Id, func(note *entity.Note) error {
		if note.Trash {
			return apperror.PreconditionFailed("Note is in trash")
		}
		return note.AddReminder(req.Reminder)
	})
}

func (s *noteService) EditReminder(ctx context.Context, userId uuid.UUID, req *dto.ReminderRequest) error {
	return s.mutateOwned(ctx, userId, req.Id, func(note *entity.Note) error {
		return note.EditReminder(req.Reminder)
	})
}

func (s *noteService) DeleteReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return s.mutateOwned(ctx, userId, id, func(note *entity.Note) error {
		return note.ClearReminder()
	})
}

func (s *noteService) ListReminders(ctx context.Context, userId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteOwnedByUser{UserID: userId},
		specification.WithReminder{},
		specification.InTrash{Trash: false},
		specification.OrderBy{Field: "notes.reminder", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	return s.toResponses(ctx, uow, notes)
}
