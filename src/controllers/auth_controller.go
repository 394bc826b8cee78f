package controllers

import (
	"fmt"
	"time"

	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account. Role defaults to auditor.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.RegisterRequest true "Registration payload"
// @Success      201  {object}  models.User
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	user, err := services.RegisterUser(&req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"data":    user,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Exchange credentials for a JWT. Five failures within fifteen
// @Description  minutes lock the email out until the window expires.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "Credentials"
// @Success      200
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if utils.IsRateLimited(req.Email) {
		cooldown := utils.RemainingCooldown(req.Email)
		return utils.HandleError(c, fiber.StatusTooManyRequests,
			fmt.Sprintf("Too many failed attempts. Try again in %s", cooldown.Round(time.Second)))
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		utils.RecordFailedLogin(req.Email)
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}
	utils.ClearLoginAttempts(req.Email)

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"token": token,
			"user":  user,
		},
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the presented token until its natural expiry.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	if jti != "" {
		if err := utils.BlacklistToken(jti, 24*time.Hour); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Me godoc
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	user, err := services.GetUserByID(userID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}
