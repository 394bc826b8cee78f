package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func technologyRoutes(api fiber.Router) {
	technologies := api.Group("/technologies")

	technologies.Get("/", controllers.GetTechnologies)
	technologies.Get("/:id", controllers.GetTechnology)
	technologies.Post("/", middleware.RequireAuditorOrAdmin, controllers.CreateTechnology)
	technologies.Post("/:technologyId/questionnaire", middleware.RequireAuditorOrAdmin, controllers.LinkQuestionnaireToTechnology)
	technologies.Put("/:id", middleware.RequireAuditorOrAdmin, controllers.UpdateTechnology)
	technologies.Delete("/:id", middleware.RequireAuditorOrAdmin, controllers.DeleteTechnology)
}
