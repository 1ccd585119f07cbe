package contract

import (
	"context"

	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TokenRepository covers the one-shot credentials issued during signup and
// password recovery.
type TokenRepository interface {
	CreateVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error
	FindVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error)
	DeleteVerificationTokensForUser(ctx context.Context, userId uuid.UUID) error

	CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error
	FindResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error)
	UpdateResetToken(ctx context.Context, token *entity.PasswordResetToken) error
	DeleteResetTokensForUser(ctx context.Context, userId uuid.UUID) error
}
