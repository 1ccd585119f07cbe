package controller

import (
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICollaboratorController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type collaboratorController struct {
	collaboratorService service.ICollaboratorService
}

func NewCollaboratorController(collaboratorService service.ICollaboratorService) ICollaboratorController {
	return &collaboratorController{
		collaboratorService: collaboratorService,
	}
}

func (c *collaboratorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/collaborator/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Add)
	h.Delete("", c.Remove)
	h.Get("note/:noteId", c.List)
}

func (c *collaboratorController) Add(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.AddCollaboratorRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.collaboratorService.Add(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Collaborator added successfully", fiber.Map{"Collaborator": res})
}

func (c *collaboratorController) Remove(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.RemoveCollaboratorRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.collaboratorService.Remove(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Collaborator removed successfully", nil)
}

func (c *collaboratorController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return apperror.ValidationFailed("Invalid note id")
	}

	res, err := c.collaboratorService.List(ctx.Context(), userId, noteId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched collaborators successfully", fiber.Map{"Collaborator": res})
}
