package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

type ICollaboratorService interface {
	Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollaboratorRequest) (*dto.CollaboratorResponse, error)
	Remove(ctx context.Context, userId uuid.UUID, req *dto.RemoveCollaboratorRequest) error
	List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.CollaboratorResponse, error)
}

type collaboratorService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	cacheStore       cache.Store
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewCollaboratorService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	cacheStore cache.Store,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICollaboratorService {
	return &collaboratorService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		cacheStore:       cacheStore,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func toCollaboratorResponse(c *entity.Collaborator) *dto.CollaboratorResponse {
	return &dto.CollaboratorResponse{
		Id:        c.Id,
		NoteId:    c.NoteId,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// Add grants note access to a registered user by email. Only the owner may
// invite, and the owner cannot invite themselves.
func (s *collaboratorService) Add(ctx context.Context, userId uuid.UUID, req *dto.AddCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return nil, err
	}

	invitee, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if invitee == nil {
		return nil, apperror.NotFound("No account found for that email")
	}
	if invitee.Id == userId {
		return nil, apperror.ValidationFailed("Cannot add yourself as a collaborator")
	}

	existing, err := uow.CollaboratorRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.CollaboratorEmail{Email: req.Email},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.AlreadyInvited()
	}

	collaborator := &entity.Collaborator{
		Id:            uuid.New(),
		NoteId:        note.Id,
		Email:         req.Email,
		InviterUserId: userId,
		CreatedAt:     time.Now(),
	}
	if err := uow.CollaboratorRepository().Create(ctx, collaborator); err != nil {
		return nil, err
	}

	// The invitee now sees this note in their listing.
	if err := s.cacheStore.Delete(ctx, notesViewKey(note.UserId), notesViewKey(invitee.Id)); err != nil {
		s.log.Warn("collaborator", "failed to invalidate note cache", map[string]interface{}{"error": err.Error()})
	}

	inviter, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && inviter != nil {
		s.queueInviteMail(ctx, req.Email, fmt.Sprintf("%s %s", inviter.Firstname, inviter.Lastname), note.Title)
	}

	if s.eventPublisher != nil {
		evt := events.New(events.TypeCollaboratorInvited, map[string]interface{}{
			"note_id":         note.Id.String(),
			"note_title":      note.Title,
			"inviter_user_id": userId.String(),
			"invitee_user_id": invitee.Id.String(),
			"invitee_email":   invitee.Email,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("collaborator", "failed to publish event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toCollaboratorResponse(collaborator), nil
}

func (s *collaboratorService) queueInviteMail(ctx context.Context, to, inviterName, noteTitle string) {
	payload, err := json.Marshal(dto.MailJob{
		Type:        dto.MailTypeCollabInvite,
		To:          to,
		InviterName: inviterName,
		NoteTitle:   noteTitle,
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Error("collaborator", "failed to queue invite mail", map[string]interface{}{"error": err.Error()})
	}
}

func (s *collaboratorService) Remove(ctx context.Context, userId uuid.UUID, req *dto.RemoveCollaboratorRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return err
	}

	collaborator, err := uow.CollaboratorRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.CollaboratorEmail{Email: req.Email},
	)
	if err != nil {
		return err
	}
	if collaborator == nil {
		return apperror.NotFound("Collaborator not found for this note")
	}

	if err := uow.CollaboratorRepository().Delete(ctx, collaborator.Id); err != nil {
		return err
	}

	keys := []string{notesViewKey(note.UserId)}
	if removed, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email}); err == nil && removed != nil {
		keys = append(keys, notesViewKey(removed.Id))

		if s.eventPublisher != nil {
			evt := events.New(events.TypeCollaboratorRemoved, map[string]interface{}{
				"note_id":         note.Id.String(),
				"note_title":      note.Title,
				"invitee_user_id": removed.Id.String(),
			})
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.log.Warn("collaborator", "failed to publish event", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	if err := s.cacheStore.Delete(ctx, keys...); err != nil {
		s.log.Warn("collaborator", "failed to invalidate note cache", map[string]interface{}{"error": err.Error()})
	}

	return nil
}

func (s *collaboratorService) List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]*dto.CollaboratorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := fetchOwnedNote(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}

	collaborators, err := uow.CollaboratorRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.WithScope(scope.OrderByCreatedAsc),
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CollaboratorResponse, len(collaborators))
	for i, c := range collaborators {
		responses[i] = toCollaboratorResponse(c)
	}
	return responses, nil
}
