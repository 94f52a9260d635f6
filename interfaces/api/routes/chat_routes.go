package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupChatRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	app.Post("/api/chat", middleware.Protected(userService), h.ChatHandler.Chat)
}
