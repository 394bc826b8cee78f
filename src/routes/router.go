package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)

	protected := api.Group("", middleware.AuthJWT)
	userRoutes(protected)
	projectRoutes(protected)
	questionRoutes(protected)
	sectionRoutes(protected)
	questionnaireRoutes(protected)
	technologyRoutes(protected)
	auditRoutes(protected)
	answerRoutes(protected)

	protected.Get("/structure", controllers.GetStructure)

	// health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
