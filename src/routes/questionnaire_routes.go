package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionnaireRoutes(api fiber.Router) {
	questionnaires := api.Group("/questionnaires")

	questionnaires.Get("/", controllers.GetQuestionnaires)
	questionnaires.Get("/latest", controllers.GetLatestQuestionnaireVersion)
	questionnaires.Get("/technology/:technologyId", controllers.GetQuestionnairesByTechnology)
	questionnaires.Get("/:id/structure", controllers.GetQuestionnaireStructure)
	questionnaires.Get("/:id", controllers.GetQuestionnaire)
	questionnaires.Post("/", middleware.RequireAuditorOrAdmin, controllers.CreateQuestionnaire)
	questionnaires.Post("/:questionnaireId/sections", middleware.RequireAuditorOrAdmin, controllers.AddSectionsToQuestionnaire)
	questionnaires.Put("/:id", middleware.RequireAuditorOrAdmin, controllers.UpdateQuestionnaire)
	questionnaires.Delete("/:id", middleware.RequireAuditorOrAdmin, controllers.DeleteQuestionnaire)
}
