package controller

import (
	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/internal/pkg/serverutils"
	"fundoo-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Pin(ctx *fiber.Ctx) error
	Unpin(ctx *fiber.Ctx) error
	ListPinned(ctx *fiber.Ctx) error
	Archive(ctx *fiber.Ctx) error
	Unarchive(ctx *fiber.Ctx) error
	ListArchived(ctx *fiber.Ctx) error
	Trash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	ListTrashed(ctx *fiber.Ctx) error
	Purge(ctx *fiber.Ctx) error
	Colour(ctx *fiber.Ctx) error
	AddReminder(ctx *fiber.Ctx) error
	EditReminder(ctx *fiber.Ctx) error
	DeleteReminder(ctx *fiber.Ctx) error
	ListReminders(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get("search", c.Search)
	h.Get("pinned", c.ListPinned)
	h.Get("archived", c.ListArchived)
	h.Get("trashed", c.ListTrashed)
	h.Get("reminders", c.ListReminders)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Put(":id/pin", c.Pin)
	h.Put(":id/unpin", c.Unpin)
	h.Put(":id/archive", c.Archive)
	h.Put(":id/unarchive", c.Unarchive)
	h.Put(":id/trash", c.Trash)
	h.Put(":id/restore", c.Restore)
	h.Delete(":id", c.Purge)
	h.Put(":id/colour", c.Colour)
	h.Post(":id/reminder", c.AddReminder)
	h.Put(":id/reminder", c.EditReminder)
	h.Delete(":id/reminder", c.DeleteReminder)
}

func noteIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.ValidationFailed("Invalid note id")
	}
	return id, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	var req dto.CreateNoteRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "notes created successfully", fiber.Map{"Notes": res})
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)
	email := serverutils.EmailFromCtx(ctx)
	page := ctx.QueryInt("page", 1)

	res, err := c.noteService.List(ctx.Context(), userId, email, page)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched notes successfully", fiber.Map{"Notes": res})
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)
	email := serverutils.EmailFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Get(ctx.Context(), userId, email, id)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched note successfully", fiber.Map{"Notes": res})
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)
	email := serverutils.EmailFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.noteService.Update(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Note updated successfully", fiber.Map{"Notes": res})
}

func (c *noteController) Search(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)
	email := serverutils.EmailFromCtx(ctx)

	query := ctx.Query("query")
	if query == "" {
		return apperror.ValidationFailed("The query field is required")
	}

	res, err := c.noteService.Search(ctx.Context(), userId, email, query)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Search results fetched successfully", fiber.Map{"Notes": res})
}

func (c *noteController) setPin(ctx *fiber.Ctx, pinned bool, message string) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.SetPin(ctx.Context(), userId, id, pinned); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, message, nil)
}

func (c *noteController) Pin(ctx *fiber.Ctx) error {
	return c.setPin(ctx, true, "Note pinned successfully")
}

func (c *noteController) Unpin(ctx *fiber.Ctx) error {
	return c.setPin(ctx, false, "Note unpinned successfully")
}

func (c *noteController) ListPinned(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.noteService.ListPinned(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched pinned notes successfully", fiber.Map{"Notes": res})
}

func (c *noteController) setArchive(ctx *fiber.Ctx, archived bool, message string) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.SetArchive(ctx.Context(), userId, id, archived); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, message, nil)
}

func (c *noteController) Archive(ctx *fiber.Ctx) error {
	return c.setArchive(ctx, true, "Note archived successfully")
}

func (c *noteController) Unarchive(ctx *fiber.Ctx) error {
	return c.setArchive(ctx, false, "Note unarchived successfully")
}

func (c *noteController) ListArchived(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.noteService.ListArchived(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched archived notes successfully", fiber.Map{"Notes": res})
}

func (c *noteController) Trash(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Trash(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Note moved to trash", nil)
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Restore(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Note restored successfully", nil)
}

func (c *noteController) ListTrashed(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.noteService.ListTrashed(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched trashed notes successfully", fiber.Map{"Notes": res})
}

func (c *noteController) Purge(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Purge(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Note deleted permanently", nil)
}

func (c *noteController) Colour(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ColourNoteRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	if err := c.noteService.SetColour(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Note colour updated successfully", nil)
}

func (c *noteController) reminderRequest(ctx *fiber.Ctx) (*dto.ReminderRequest, error) {
	id, err := noteIdParam(ctx)
	if err != nil {
		return nil, err
	}

	var req dto.ReminderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return nil, err
	}
	req.Id = id
	return &req, nil
}

func (c *noteController) AddReminder(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	req, err := c.reminderRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.AddReminder(ctx.Context(), userId, req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Reminder added successfully", nil)
}

func (c *noteController) EditReminder(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	req, err := c.reminderRequest(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.EditReminder(ctx.Context(), userId, req); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Reminder updated successfully", nil)
}

func (c *noteController) DeleteReminder(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.DeleteReminder(ctx.Context(), userId, id); err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Reminder deleted successfully", nil)
}

func (c *noteController) ListReminders(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromCtx(ctx)

	res, err := c.noteService.ListReminders(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Fetched reminders successfully", fiber.Map{"Notes": res})
}
