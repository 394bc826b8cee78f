package routes

import (
	"Backend-TechAudit/src/controllers"
	"Backend-TechAudit/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes: register and login are open, logout and me need a token.
func authRoutes(api fiber.Router) {
	auth := api.Group("/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
	auth.Get("/me", middleware.AuthJWT, controllers.Me)
}
