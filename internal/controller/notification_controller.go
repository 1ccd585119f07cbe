package controller

import (
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	MarkAllRead(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
}

func NewNotificationController(notificationService service.INotificationService) INotificationController {
	return &notificationController{
		notificationService: notificationService,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notification/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get("unread-count", c.UnreadCount)
	h.Put("read-all", c.MarkAllRead)
	h.Put(":id/read", c.MarkRead)
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.notificationService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched notifications successfully", fiber.Map{"Notifications": res})
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.notificationService.UnreadCount(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched unread count successfully", fiber.Map{"Notifications": res})
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.ValidationFailed("Invalid notification id")
	}

	if err := c.notificationService.MarkRead(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Notification marked as read", nil)
}

func (c *notificationController) MarkAllRead(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	if err := c.notificationService.MarkAllRead(ctx.Context(), userId); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "All notifications marked as read", nil)
}
