package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func auditRoutes(api fiber.Router) {
	audits := api.Group("/audits", middleware.RequireAuditorOrAdmin)

	audits.Get("/", controllers.GetAudits)
	audits.Get("/overdue", controllers.GetOverdueAudits)
	audits.Get("/:id", controllers.GetAudit)
	audits.Post("/", controllers.CreateAudit)
	audits.Put("/:id", controllers.UpdateAudit)
	audits.Delete("/:id", controllers.DeleteAudit)

	audits.Post("/:id/start", controllers.StartAudit)
	audits.Post("/:id/complete", controllers.CompleteAudit)
	audits.Post("/:id/cancel", controllers.CancelAudit)
	audits.Post("/:id/score", controllers.CalculateAuditScore)
	audits.Post("/:id/team/:userId", controllers.AddTeamMember)
	audits.Delete("/:id/team/:userId", controllers.RemoveTeamMember)
}
