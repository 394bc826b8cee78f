package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/services/questionnaires"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type unlinkQuestionsRequest struct {
	QuestionIDs []string `json:"questionIds"`
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  Create a standalone question; attach it to a section later
// @Description  through the linking endpoints.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.QuestionDto true "Question"
// @Success      201  {object}  models.Question
// @Failure      400  {object}  models.ErrorResponse
// @Router       /questions [post]
func CreateQuestion(c *fiber.Ctx) error {
	var dto models.QuestionDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	question, err := questionnaires.Default().CreateQuestion(c.Context(), &dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Question created successfully",
		"data":    question,
	})
}

// GetQuestions godoc
// @Summary      List questions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Param        search  query string false "Search question text"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /questions [get]
func GetQuestions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := services.GetQuestions(params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetStandaloneQuestions godoc
// @Summary      List questions not linked to any section
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Question
// @Router       /questions/standalone [get]
func GetStandaloneQuestions(c *fiber.Ctx) error {
	questions, err := services.GetStandaloneQuestions()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questions,
		"count":   len(questions),
	})
}

// GetQuestionsBySection godoc
// @Summary      List a section's questions in order
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        sectionId path string true "Section ID"
// @Success      200  {array}  models.Question
// @Router       /questions/section/{sectionId} [get]
func GetQuestionsBySection(c *fiber.Ctx) error {
	questions, err := services.GetQuestionsBySection(c.Params("sectionId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    questions,
		"count":   len(questions),
	})
}

// GetQuestion godoc
// @Summary      Get a question by ID
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Question ID"
// @Success      200  {object}  models.Question
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [get]
func GetQuestion(c *fiber.Ctx) error {
	question, err := services.GetQuestionByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    question,
	})
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string          true "Question ID"
// @Param        body body models.Question true "Question fields"
// @Success      200  {object}  models.Question
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [put]
func UpdateQuestion(c *fiber.Ctx) error {
	var question models.Question
	if err := c.BodyParser(&question); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateQuestion(c.Params("id"), &question)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Question updated successfully",
		"data":    updated,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Question ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questions/{id} [delete]
func DeleteQuestion(c *fiber.Ctx) error {
	if err := services.DeleteQuestion(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Question deleted successfully",
	})
}

// UnlinkQuestions godoc
// @Summary      Detach questions from their sections
// @Description  The questions become standalone again. Repeating the call
// @Description  changes nothing.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body unlinkQuestionsRequest true "Question IDs"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Router       /questions/unlink [post]
func UnlinkQuestions(c *fiber.Ctx) error {
	var req unlinkQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	count, err := questionnaires.Default().UnlinkQuestions(c.Context(), req.QuestionIDs)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Questions unlinked successfully",
		"count":   count,
	})
}
