package contract

import (
	"context"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	Update(ctx context.Context, notification *entity.Notification) error
	MarkAllReadForUser(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notification, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
