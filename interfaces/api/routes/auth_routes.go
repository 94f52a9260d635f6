package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	app.Post("/register", h.AuthHandler.Register)
	app.Post("/login", h.AuthHandler.Login)

	// logout ไม่บังคับ auth - ไม่มี session ก็แค่เคลียร์ cookie
	app.Get("/logout", middleware.Optional(userService), h.AuthHandler.Logout)
}
