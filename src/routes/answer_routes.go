package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func answerRoutes(api fiber.Router) {
	answers := api.Group("/answers", middleware.RequireAuditorOrAdmin)

	answers.Post("/", controllers.CreateAnswer)
	answers.Get("/audit/:auditId", controllers.GetAnswersByAudit)
	answers.Put("/:id", controllers.UpdateAnswer)
	answers.Delete("/:id", controllers.DeleteAnswer)
}
