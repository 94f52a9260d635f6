package routes

import (
	"github.com/gofiber/fiber/v2"

	"planora/domain/services"
	"planora/interfaces/api/handlers"
	"planora/interfaces/api/middleware"
)

func SetupRoadmapRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService) {
	protected := middleware.Protected(userService)

	app.Get("/roadmaps", protected, h.RoadmapHandler.ListRoadmaps)
	app.Post("/add_roadmap", protected, h.RoadmapHandler.CreateRoadmap)
	app.Get("/roadmap/:id", protected, h.RoadmapHandler.GetRoadmap)
	app.Get("/delete_roadmap/:id", protected, h.RoadmapHandler.DeleteRoadmap)

	app.Post("/add_milestone/:roadmap_id", protected, h.RoadmapHandler.AddMilestone)
	app.Get("/toggle_milestone/:m_id/:r_id", protected, h.RoadmapHandler.ToggleMilestone)
	app.Get("/delete_milestone/:m_id/:r_id", protected, h.RoadmapHandler.DeleteMilestone)
}
