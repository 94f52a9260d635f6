package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type NoteHandler struct {
	noteService services.NoteService
}

func NewNoteHandler(noteService services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	notes, err := h.noteService.ListNotes(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Note list failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = dto.NoteToNoteResponse(note)
	}

	return utils.SuccessResponse(c, responses)
}

func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	note, err := h.noteService.CreateNote(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Note creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Note created", "note_id", note.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.NoteToNoteResponse(note))
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	if err := h.noteService.UpdateNote(ctx, user.ID, noteID, &req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Note not found")
		}
		logger.ErrorContext(ctx, "Note update failed", "note_id", noteID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"updated": true})
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid note ID")
	}

	if err := h.noteService.DeleteNote(ctx, user.ID, noteID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Note not found")
		}
		logger.ErrorContext(ctx, "Note delete failed", "note_id", noteID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Note deleted", "note_id", noteID, "user_id", user.ID)

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}
