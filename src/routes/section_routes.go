package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func sectionRoutes(api fiber.Router) {
	sections := api.Group("/sections")

	sections.Get("/", controllers.GetSections)
	sections.Get("/questionnaire/:questionnaireId", controllers.GetSectionsByQuestionnaire)
	sections.Get("/:id", controllers.GetSection)
	sections.Post("/", middleware.RequireAuditorOrAdmin, controllers.CreateSection)
	sections.Post("/:sectionId/questions", middleware.RequireAuditorOrAdmin, controllers.AddQuestionsToSection)
	sections.Put("/:id", middleware.RequireAuditorOrAdmin, controllers.UpdateSection)
	sections.Delete("/:id", middleware.RequireAuditorOrAdmin, controllers.DeleteSection)
}
