package middleware

import (
	"strings"

	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT verifies the bearer token, rejects blacklisted tokens and
// requires the account to still exist and be active. The authenticated
// principal is exposed through c.Locals (userId, email, role).
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Missing or invalid Authorization header",
		})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid or expired token",
		})
	}

	if blacklisted, _ := utils.IsTokenBlacklisted(claims.ID); blacklisted {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Token has been revoked",
		})
	}

	user, err := services.GetUserByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "User not found",
		})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "User account is deactivated",
		})
	}

	c.Locals("userId", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", user.Role)
	c.Locals("jti", claims.ID)

	return c.Next()
}

// RequireAdmin restricts a route to admins.
func RequireAdmin(c *fiber.Ctx) error {
	if c.Locals("role") != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Admin access required",
		})
	}
	return c.Next()
}

// RequireAuditorOrAdmin restricts a route to auditors and admins.
func RequireAuditorOrAdmin(c *fiber.Ctx) error {
	role := c.Locals("role")
	if role != "admin" && role != "auditor" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   "Auditor or admin access required",
		})
	}
	return c.Next()
}
