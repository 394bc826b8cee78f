package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func projectRoutes(api fiber.Router) {
	projects := api.Group("/projects")

	projects.Get("/", controllers.GetProjects)
	projects.Get("/:id", controllers.GetProject)
	projects.Post("/", middleware.RequireAuditorOrAdmin, controllers.CreateProject)
	projects.Put("/:id", middleware.RequireAuditorOrAdmin, controllers.UpdateProject)
	projects.Delete("/:id", middleware.RequireAuditorOrAdmin, controllers.DeleteProject)
}
