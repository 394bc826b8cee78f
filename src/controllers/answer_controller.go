package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAnswer godoc
// @Summary      Record an answer
// @Description  One answer per (audit, question) pair; a second submission
// @Description  is rejected as a conflict. answeredBy is taken from the
// @Description  authenticated user.
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.Answer true "Answer"
// @Success      201  {object}  models.Answer
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /answers [post]
func CreateAnswer(c *fiber.Ctx) error {
	var answer models.Answer
	if err := c.BodyParser(&answer); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if userID, ok := c.Locals("userId").(string); ok {
		if objID, err := primitive.ObjectIDFromHex(userID); err == nil {
			answer.AnsweredBy = objID
		}
	}

	if err := services.CreateAnswer(&answer); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Answer recorded successfully",
		"data":    answer,
	})
}

// GetAnswersByAudit godoc
// @Summary      List an audit's answers
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        auditId path string true "Audit ID"
// @Success      200  {array}  models.Answer
// @Router       /answers/audit/{auditId} [get]
func GetAnswersByAudit(c *fiber.Ctx) error {
	answers, err := services.GetAnswersByAudit(c.Params("auditId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    answers,
		"count":   len(answers),
	})
}

// UpdateAnswer godoc
// @Summary      Update an answer
// @Description  Updates compliance status, evidence or notes and re-stamps
// @Description  answeredAt.
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string              true "Answer ID"
// @Param        body body models.AnswerUpdate true "Fields to change"
// @Success      200  {object}  models.Answer
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [put]
func UpdateAnswer(c *fiber.Ctx) error {
	var update models.AnswerUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateAnswer(c.Params("id"), &update)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Answer updated successfully",
		"data":    updated,
	})
}

// DeleteAnswer godoc
// @Summary      Delete an answer
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Answer ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /answers/{id} [delete]
func DeleteAnswer(c *fiber.Ctx) error {
	if err := services.DeleteAnswer(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Answer deleted successfully",
	})
}
