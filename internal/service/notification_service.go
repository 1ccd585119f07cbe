package service

import (
	"context"
	"fmt"
	"time"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/repository/scope"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"
	"fundoo-notes-be/pkg/events"

	"github.com/google/uuid"
)

type INotificationService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error

	// HandleEvent is the entry point for the event worker.
	HandleEvent(ctx context.Context, event events.Event) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		log:        log,
	}
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        n.Id,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.NotificationForUser{UserID: userId},
		specification.WithScope(scope.OrderByCreatedDesc),
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = toNotificationResponse(n)
	}
	return responses, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (*dto.UnreadCountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.NotificationRepository().Count(ctx,
		specification.NotificationForUser{UserID: userId},
		specification.Unread{},
	)
	if err != nil {
		return nil, err
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notification, err := uow.NotificationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotificationForUser{UserID: userId},
	)
	if err != nil {
		return err
	}
	if notification == nil {
		return apperror.NotFound("Notification not found")
	}
	if notification.IsRead {
		return nil
	}

	now := time.Now()
	notification.IsRead = true
	notification.ReadAt = &now
	return uow.NotificationRepository().Update(ctx, notification)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllReadForUser(ctx, userId)
}

// HandleEvent turns bus events into notification rows. Unknown event types
// are acked silently so new producers do not wedge the worker.
func (s *notificationService) HandleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	switch event.EventType() {
	case events.TypeUserVerified:
		return s.store(ctx, payload, "user_id", event.EventType(),
			"Welcome to Fundoo Notes",
			"Your email is verified. Start taking notes!")

	case events.TypeCollaboratorInvited:
		noteTitle, _ := payload["note_title"].(string)
		return s.store(ctx, payload, "invitee_user_id", event.EventType(),
			"New shared note",
			fmt.Sprintf("You were added as a collaborator on %q", noteTitle))

	case events.TypeCollaboratorRemoved:
		noteTitle, _ := payload["note_title"].(string)
		return s.store(ctx, payload, "invitee_user_id", event.EventType(),
			"Access removed",
			fmt.Sprintf("You no longer have access to %q", noteTitle))

	default:
		s.log.Debug("notification", "ignoring event", map[string]interface{}{
			"event": event.EventType(),
		})
		return nil
	}
}

func (s *notificationService) store(ctx context.Context, payload map[string]interface{}, userKey, eventType, title, message string) error {
	rawId, _ := payload[userKey].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		s.log.Warn("notification", "event missing user id", map[string]interface{}{
			"event": eventType,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      eventType,
		Title:     title,
		Message:   message,
		Metadata:  payload,
		CreatedAt: time.Now(),
	}
	return uow.NotificationRepository().Create(ctx, notification)
}
