package unitofwork

import (
	"context"

	"fundoo-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TokenRepository() contract.TokenRepository
	NoteRepository() contract.NoteRepository
	LabelRepository() contract.LabelRepository
	NoteLabelRepository() contract.NoteLabelRepository
	CollaboratorRepository() contract.CollaboratorRepository
	NotificationRepository() contract.NotificationRepository
}
