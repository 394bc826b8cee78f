package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// userRoutes: account management is admin territory.
func userRoutes(api fiber.Router) {
	users := api.Group("/users", middleware.RequireAdmin)

	users.Get("/", controllers.GetUsers)
	users.Get("/:id", controllers.GetUser)
	users.Put("/:id", controllers.UpdateUser)
	users.Delete("/:id", controllers.DeleteUser)
}
