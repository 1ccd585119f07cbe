package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/logger"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"
	"fundoo-notes-be/pkg/events"
	pktNats "fundoo-notes-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTokenTTL = 24 * time.Hour
	resetTokenTTL        = time.Hour
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *authService) queueMail(ctx context.Context, job dto.MailJob) {
	payload, err := json.Marshal(job)
	if err != nil {
		s.log.Error("auth", "failed to marshal mail job", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		// Mail is auxiliary, the request itself already succeeded.
		s.log.Error("auth", "failed to queue mail job", map[string]interface{}{"error": err.Error()})
	}
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		s.log.Warn("auth", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.DuplicateEmail()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Status:       entity.UserStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	// User and verification token are created atomically.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := uow.TokenRepository().CreateVerificationToken(ctx, verificationToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.queueMail(ctx, dto.MailJob{
		Type:  dto.MailTypeVerification,
		To:    user.Email,
		Token: token,
	})

	s.publishEvent(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	if user.Verified() {
		return apperror.AlreadyInState("Email already verified")
	}

	token, err := uow.TokenRepository().FindVerificationToken(ctx,
		specification.TokenForUser{UserID: user.Id},
		specification.ByToken{Token: req.Token},
		specification.NotExpired{Now: time.Now()},
	)
	if err != nil {
		return err
	}
	if token == nil {
		return apperror.ValidationFailed("Invalid or expired verification token")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	user.Status = entity.UserStatusVerified
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}
	if err := uow.TokenRepository().DeleteVerificationTokensForUser(ctx, user.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.TypeUserVerified, map[string]interface{}{
		"user_id": user.Id.String(),
		"email":   user.Email,
	})

	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ValidationFailed("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.ValidationFailed("Invalid email or password")
	}

	if !user.Verified() {
		return nil, apperror.Unverified()
	}

	accessToken, err := serverutils.IssueToken(user.Id, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Id:          user.Id,
		Firstname:   user.Firstname,
		Lastname:    user.Lastname,
		Email:       user.Email,
		AccessToken: accessToken,
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	token, err := generateToken()
	if err != nil {
		return err
	}

	// A fresh request invalidates any earlier reset tokens.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TokenRepository().DeleteResetTokensForUser(ctx, user.Id); err != nil {
		return err
	}

	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}
	if err := uow.TokenRepository().CreateResetToken(ctx, resetToken); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.queueMail(ctx, dto.MailJob{
		Type:  dto.MailTypePasswordReset,
		To:    user.Email,
		Token: token,
	})

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	token, err := uow.TokenRepository().FindResetToken(ctx,
		specification.ByToken{Token: req.Token},
		specification.NotExpired{Now: time.Now()},
		specification.NotUsed{},
	)
	if err != nil {
		return err
	}
	if token == nil {
		return apperror.ValidationFailed("Invalid or expired reset token")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: token.UserId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	token.Used = true
	if err := uow.TokenRepository().UpdateResetToken(ctx, token); err != nil {
		return err
	}

	return uow.Commit()
}
