package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
)

// SetupRoutes ผูกทุก route เข้ากับ app
// path surface ตรงกับ frontend เดิม - ไม่มี /api/v1 prefix ยกเว้น /api/chat
func SetupRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	SetupHealthRoutes(app)

	SetupAuthRoutes(app, h, userService)
	SetupTaskRoutes(app, h, userService)
	SetupEventRoutes(app, h, userService)
	SetupNoteRoutes(app, h, userService)
	SetupRoadmapRoutes(app, h, userService)
	SetupChatRoutes(app, h, userService)
}
