package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupEventRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	// get_events ใช้ Optional - calendar โหลด feed นี้ก่อน login แล้วคาด []
	app.Get("/get_events", middleware.Optional(userService), h.EventHandler.GetEvents)

	app.Post("/add_event", middleware.Protected(userService), h.EventHandler.CreateEvent)
	app.Post("/update_event", middleware.Protected(userService), h.EventHandler.UpdateEvent)
}
