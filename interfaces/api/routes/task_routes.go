package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	app.Get("/todo", middleware.Protected(userService), h.TaskHandler.ListTasks)
	app.Post("/add_todo", middleware.Protected(userService), h.TaskHandler.CreateTask)

	// delete/update_status ใช้ Optional - ไม่ login เป็น no-op success
	// (frontend เดิมยิงมาโดยไม่เช็ค session ก่อน)
	app.Get("/delete/:id", middleware.Optional(userService), h.TaskHandler.DeleteTask)
	app.Get("/delete_event/:id", middleware.Optional(userService), h.TaskHandler.DeleteTask)
	app.Post("/update_status/:id", middleware.Optional(userService), h.TaskHandler.UpdateStatus)
}
