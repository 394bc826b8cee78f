package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// questionRoutes: static paths are registered before /:id so they are not
// swallowed by the parameter route.
func questionRoutes(api fiber.Router) {
	questions := api.Group("/questions")

	questions.Get("/", controllers.GetQuestions)
	questions.Get("/standalone", controllers.GetStandaloneQuestions)
	questions.Get("/section/:sectionId", controllers.GetQuestionsBySection)
	questions.Post("/unlink", middleware.RequireAuditorOrAdmin, controllers.UnlinkQuestions)
	questions.Get("/:id", controllers.GetQuestion)
	questions.Post("/", middleware.RequireAuditorOrAdmin, controllers.CreateQuestion)
	questions.Put("/:id", middleware.RequireAuditorOrAdmin, controllers.UpdateQuestion)
	questions.Delete("/:id", middleware.RequireAuditorOrAdmin, controllers.DeleteQuestion)
}
