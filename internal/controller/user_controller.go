package controller

import (
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
	UploadAvatar(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
	h.Put("password", c.ChangePassword)
	h.Post("avatar", c.UploadAvatar)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.userService.Profile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched profile successfully", fiber.Map{"User": res})
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.UpdateProfileRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Profile updated successfully", fiber.Map{"User": res})
}

func (c *userController) ChangePassword(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.ChangePasswordRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.userService.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Password changed successfully", nil)
}

func (c *userController) UploadAvatar(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	file, err := ctx.FormFile("avatar")
	if err != nil {
		return apperror.ValidationFailed("The avatar file is required")
	}

	res, err := c.userService.UploadAvatar(ctx, userId, file)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Avatar uploaded successfully", fiber.Map{"User": res})
}
