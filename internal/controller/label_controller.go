package controller

import (
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILabelController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Attach(ctx *fiber.Ctx) error
	Detach(ctx *fiber.Ctx) error
}

type labelController struct {
	labelService service.ILabelService
}

func NewLabelController(labelService service.ILabelService) ILabelController {
	return &labelController{
		labelService: labelService,
	}
}

func (c *labelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/label/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/note/:noteId", c.Attach)
	h.Delete(":id/note/:noteId", c.Detach)
}

func labelIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.ValidationFailed("Invalid id")
	}
	return id, nil
}

func (c *labelController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.CreateLabelRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.labelService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Label created successfully", fiber.Map{"Label": res})
}

func (c *labelController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.labelService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched labels successfully", fiber.Map{"Label": res})
}

func (c *labelController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := labelIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateLabelRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.labelService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Label updated successfully", fiber.Map{"Label": res})
}

func (c *labelController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := labelIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.labelService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Label deleted successfully", nil)
}

func (c *labelController) Attach(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	labelId, err := labelIdParam(ctx, "id")
	if err != nil {
		return err
	}
	noteId, err := labelIdParam(ctx, "noteId")
	if err != nil {
		return err
	}

	req := &dto.AttachLabelRequest{NoteId: noteId, LabelId: labelId}
	if err := c.labelService.Attach(ctx.Context(), userId, req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Label attached to note successfully", nil)
}

func (c *labelController) Detach(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	labelId, err := labelIdParam(ctx, "id")
	if err != nil {
		return err
	}
	noteId, err := labelIdParam(ctx, "noteId")
	if err != nil {
		return err
	}

	if err := c.labelService.Detach(ctx.Context(), userId, noteId, labelId); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Label detached from note successfully", nil)
}
