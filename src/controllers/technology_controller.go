package controllers

import (
	"Backend-TechAudit/src/models"
	"Backend-TechAudit/src/services"
	"Backend-TechAudit/src/services/questionnaires"
	"Backend-TechAudit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type linkQuestionnaireRequest struct {
	QuestionnaireID string `json:"questionnaireId"`
}

// CreateTechnology godoc
// @Summary      Create a technology, optionally with a questionnaire tree
// @Description  A nested questionnaire payload creates the technology, the
// @Description  questionnaire and its sections and questions in one call.
// @Description  On any failure nothing is left behind.
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.TechnologyDto true "Technology"
// @Success      201
// @Failure      400  {object}  models.ErrorResponse
// @Router       /technologies [post]
func CreateTechnology(c *fiber.Ctx) error {
	var dto models.TechnologyDto
	if err := c.BodyParser(&dto); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	technology, structure, err := questionnaires.Default().CreateTechnologyWithQuestionnaire(c.Context(), &dto)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Technology created successfully",
		"data": fiber.Map{
			"technology":    technology,
			"questionnaire": structure,
		},
	})
}

// GetTechnologies godoc
// @Summary      List technologies
// @Tags         technologies
// @Produce      json
// @Security     BearerAuth
// @Param        page    query int    false "Page"
// @Param        limit   query int    false "Page size"
// @Param        search  query string false "Search name, vendor or category"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /technologies [get]
func GetTechnologies(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters: "+err.Error())
	}
	params.Sanitize()

	result, err := services.GetTechnologies(params)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetTechnology godoc
// @Summary      Get a technology by ID
// @Tags         technologies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Technology ID"
// @Success      200  {object}  models.Technology
// @Failure      404  {object}  models.ErrorResponse
// @Router       /technologies/{id} [get]
func GetTechnology(c *fiber.Ctx) error {
	technology, err := services.GetTechnologyByID(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    technology,
	})
}

// UpdateTechnology godoc
// @Summary      Update a technology
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string            true "Technology ID"
// @Param        body body models.Technology true "Technology fields"
// @Success      200  {object}  models.Technology
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /technologies/{id} [put]
func UpdateTechnology(c *fiber.Ctx) error {
	var technology models.Technology
	if err := c.BodyParser(&technology); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := services.UpdateTechnology(c.Params("id"), &technology)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Technology updated successfully",
		"data":    updated,
	})
}

// DeleteTechnology godoc
// @Summary      Delete a technology
// @Description  Linked questionnaires are detached, not deleted.
// @Tags         technologies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Technology ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /technologies/{id} [delete]
func DeleteTechnology(c *fiber.Ctx) error {
	if err := services.DeleteTechnology(c.Params("id")); err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Technology deleted successfully",
	})
}

// LinkQuestionnaireToTechnology godoc
// @Summary      Attach an existing questionnaire to a technology
// @Tags         technologies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        technologyId path string                   true "Technology ID"
// @Param        body         body linkQuestionnaireRequest true "Questionnaire ID"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /technologies/{technologyId}/questionnaire [post]
func LinkQuestionnaireToTechnology(c *fiber.Ctx) error {
	var req linkQuestionnaireRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	err := questionnaires.Default().LinkQuestionnaireToTechnology(c.Context(), req.QuestionnaireID, c.Params("technologyId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Questionnaire linked to technology successfully",
	})
}
