package service

import (
	"context"
	"mime/multipart"
	"time"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/storage"
	"fundoo-notes-be/internal/repository/specification"
	"fundoo-notes-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	UploadAvatar(ctx *fiber.Ctx, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	storage    *storage.LocalStorage
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, storage *storage.LocalStorage) IUserService {
	return &userService{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

func (s *userService) toResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:        user.Id,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Status:    string(user.Status),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return s.toResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	user.Firstname = req.Firstname
	user.Lastname = req.Lastname
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperror.ValidationFailed("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) UploadAvatar(ctx *fiber.Ctx, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserProfileResponse, error) {
	reqCtx := ctx.UserContext()
	uow := s.uowFactory.NewUnitOfWork(reqCtx)

	user, err := uow.UserRepository().FindOne(reqCtx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	url, err := s.storage.SaveAvatar(ctx, file, userId)
	if err != nil {
		return nil, apperror.ValidationFailed(err.Error())
	}

	user.AvatarURL = &url
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(reqCtx, user); err != nil {
		return nil, err
	}

	return s.toResponse(user), nil
}
