package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupNoteRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	protected := middleware.Protected(userService)

	app.Get("/notes", protected, h.NoteHandler.ListNotes)
	app.Post("/add_note", protected, h.NoteHandler.CreateNote)
	app.Post("/update_note/:id", protected, h.NoteHandler.UpdateNote)
	app.Get("/delete_note/:id", protected, h.NoteHandler.DeleteNote)
}
