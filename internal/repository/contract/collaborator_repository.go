package contract

import (
	"context"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *entity.Collaborator) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Collaborator, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collaborator, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
