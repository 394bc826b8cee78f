package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/services/questionnaires"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type addQuestionsRequest struct {
	QuestionIDs []string `json:"questionIds"`
}

// CreateSection godoc
// @Summary      Create a section, optionally with its questions
// @Description  A nested questions array creates the whole group in one
// @Description  call. On any failure nothing is left behind.
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.SectionDto true "Section and questions"
// @Success      201  {object}  models.SectionStructure
// @Failure      400  {object}  models.ErrorResponse
// @Router       /sections [post]
func CreateSection(c *fiber.Ctx) error {
	var dto models.SectionDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	structure, err := questionnaires.Default().CreateSectionWithQuestions(c.Context(), &dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Section created successfully",
		"data":    structure,
	})
}

// GetSections godoc
// @Summary      List sections
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Param        search  query string false "Search title"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /sections [get]
func GetSections(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := services.GetSections(params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetSectionsByQuestionnaire godoc
// @Summary      List a questionnaire's sections in order
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        questionnaireId path string true "Questionnaire ID"
// @Success      200  {array}  models.Section
// @Router       /sections/questionnaire/{questionnaireId} [get]
func GetSectionsByQuestionnaire(c *fiber.Ctx) error {
	sections, err := services.GetSectionsByQuestionnaire(c.Params("questionnaireId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sections,
		"count":   len(sections),
	})
}

// GetSection godoc
// @Summary      Get a section by ID
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Section ID"
// @Success      200  {object}  models.Section
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sections/{id} [get]
func GetSection(c *fiber.Ctx) error {
	section, err := services.GetSectionByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    section,
	})
}

// UpdateSection godoc
// @Summary      Update a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string         true "Section ID"
// @Param        body body models.Section true "Section fields"
// @Success      200  {object}  models.Section
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sections/{id} [put]
func UpdateSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateSection(c.Params("id"), &section)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Section updated successfully",
		"data":    updated,
	})
}

// DeleteSection godoc
// @Summary      Delete a section
// @Description  The section's questions are detached, not deleted.
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Section ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sections/{id} [delete]
func DeleteSection(c *fiber.Ctx) error {
	if err := services.DeleteSection(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Section deleted successfully",
	})
}

// AddQuestionsToSection godoc
// @Summary      Link existing questions to a section
// @Description  Questions already in the section stay put, so the call is
// @Description  idempotent.
// @Tags         sections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        sectionId path string              true "Section ID"
// @Param        body      body addQuestionsRequest true "Question IDs"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /sections/{sectionId}/questions [post]
func AddQuestionsToSection(c *fiber.Ctx) error {
	var req addQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	count, err := questionnaires.Default().AddQuestionsToSection(c.Context(), c.Params("sectionId"), req.QuestionIDs)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Questions added to section successfully",
		"count":   count,
	})
}
